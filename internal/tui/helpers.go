package tui

import (
	"path/filepath"
	"unicode/utf8"
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen < 1 {
		return ""
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns s unchanged if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// shortPath shows at most the parent directory and file name.
func shortPath(p string) string {
	dir, file := filepath.Split(p)
	parent := filepath.Base(filepath.Clean(dir))
	if dir == "" || parent == "." || parent == string(filepath.Separator) {
		return p
	}
	return filepath.Join(parent, file)
}
