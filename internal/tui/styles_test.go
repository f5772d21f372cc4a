package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/dateticket/pkg/ticket"
)

func TestRenderShimmerLogoKeepsLetters(t *testing.T) {
	for _, frame := range []int{0, 1, 17, 500} {
		out := renderShimmerLogo(frame)
		for _, r := range "DATETICKET" {
			if !strings.ContainsRune(out, r) {
				t.Errorf("frame %d: logo missing %q", frame, r)
			}
		}
	}
}

func TestRenderShimmerLogoWidthStable(t *testing.T) {
	w := lipgloss.Width(renderShimmerLogo(0))
	for frame := 1; frame < 50; frame++ {
		if got := lipgloss.Width(renderShimmerLogo(frame)); got != w {
			t.Fatalf("frame %d width = %d, want %d", frame, got, w)
		}
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-4, 0},
		{0, 0},
		{127.9, 127},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampByte(tt.in); got != tt.want {
			t.Errorf("clampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHelpBar(t *testing.T) {
	out := helpBar([2]string{"ctrl+s", "export"}, [2]string{"esc", "quit"})
	for _, want := range []string{"ctrl+s", "export", "esc", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("helpBar output %q missing %q", out, want)
		}
	}
}

func TestCodeBadge(t *testing.T) {
	out := CodeBadge("VAL-7Q2K")
	if !strings.Contains(out, "Code: VAL-7Q2K") {
		t.Errorf("CodeBadge = %q, want the code text", out)
	}
	fg, bg := codeStyle.GetForeground(), codeStyle.GetBackground()
	if fg != lipgloss.Color(ticket.CodeInkHex) || bg != lipgloss.Color(ticket.PillFillHex) {
		t.Errorf("badge colours = %v on %v, want %s on %s", fg, bg, ticket.CodeInkHex, ticket.PillFillHex)
	}
}
