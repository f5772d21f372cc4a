package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/dateticket/pkg/ticket"
)

// Shimmer animation for the header logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

const logoText = "DATE TICKET"

// renderShimmerLogo renders the logo as a wave of rose light running from
// deep wine (#5a1a2c) to hot pink (#ff4d6d). Letters are spaced apart.
func renderShimmerLogo(frame int) string {
	n := len(logoText)
	t := float64(frame)

	var out strings.Builder
	for i := 0; i < n; i++ {
		if logoText[i] == ' ' {
			out.WriteString("    ")
			continue
		}
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)
		b = b*0.75 + math.Sin(t*0.035)*0.12 + 0.18
		b = math.Min(math.Max(b, 0.05), 1.0)

		r := clampByte(0x5a + b*(0xff-0x5a))
		g := clampByte(0x1a + b*(0x4d-0x1a))
		bl := clampByte(0x2c + b*(0x6d-0x2c))

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, bl)))
		out.WriteString(s.Render(string(logoText[i])))

		if i < n-1 && logoText[i+1] != ' ' {
			out.WriteString("  ")
		}
	}
	return out.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a08890"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ticket.PillFillHex)).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e8d0d6"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#705860"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a08890"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#705860"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ticket.CodeInkHex))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff9bb0"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	// Ticket code pill, same colours as the rendered ticket.
	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ticket.CodeInkHex)).
			Background(lipgloss.Color(ticket.PillFillHex)).
			Bold(true).
			Padding(0, 1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff7aa5")).
			Padding(0, 2)
)

// CodeBadge renders a ticket code the way the ticket's pill shows it.
func CodeBadge(code string) string {
	return codeStyle.Render("Code: " + code)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpBar joins entries with the standard spacing.
func helpBar(entries ...[2]string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = helpEntry(e[0], e[1])
	}
	return " " + strings.Join(parts, "  ")
}
