package ticket

import "strings"

// Measurer reports the rendered width of a string in the current font.
// *gg.Context satisfies it.
type Measurer interface {
	MeasureString(s string) (w, h float64)
}

// Line is one wrapped line with its baseline origin.
type Line struct {
	Text string
	X, Y float64
}

// Wrap greedily breaks text at whitespace so that no line measures wider
// than maxWidth. A word that is wider than maxWidth on its own gets a line
// to itself; words are never split. The first line sits at baseline y and
// each following line lineHeight below. Wrap returns the lines and the
// baseline of the last one (y itself when text is blank).
func Wrap(m Measurer, text string, x, y, maxWidth, lineHeight float64) ([]Line, float64) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, y
	}

	var lines []Line
	cur := ""
	for _, word := range words {
		trial := word
		if cur != "" {
			trial = cur + " " + word
		}
		if w, _ := m.MeasureString(trial); w > maxWidth && cur != "" {
			lines = append(lines, Line{Text: cur, X: x, Y: y})
			cur = word
			y += lineHeight
			continue
		}
		cur = trial
	}
	lines = append(lines, Line{Text: cur, X: x, Y: y})
	return lines, y
}
