package tui

import "unicode/utf8"

// maxInputLen caps every form field, in runes.
const maxInputLen = 280

// editRune applies one keystroke to a field value. Backspace removes a
// whole rune; any other single rune is appended while the field is under
// maxInputLen. Other keys leave text unchanged.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}
