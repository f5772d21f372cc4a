package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/naveenspark/dateticket/internal/pipeline"
	"github.com/naveenspark/dateticket/internal/tui"
	"github.com/naveenspark/dateticket/pkg/ticket"
)

var valentineLines = [...]string{
	"Ticket printed. Nerves not included.",
	"Admit one. Maybe two, if it goes well.",
	"The hearts were placed at random. The question was not.",
	"Non-refundable. Non-transferable. Highly recommended.",
	"Keep the code. Someone may ask for it at the door.",
	"Printed on A4, delivered with courage.",
	"Dress code: whatever makes you smile.",
	"Seat reserved. The other one too.",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ticket.CodeInkHex)).
			Bold(true)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	cmdStyle  = lipgloss.NewStyle().Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0a050"))
)

func printHelp(w io.Writer) {
	title := titleStyle.Render("D A T E   T I C K E T")
	quote := quoteStyle.Render(`"Ask properly. Print it out."`)

	commands := []struct{ cmd, desc string }{
		{"dateticket", "Fill in the ticket form (interactive TUI)"},
		{"dateticket render", "Render PNG and PDF from flags and config"},
		{"dateticket --version", "Show version"},
		{"dateticket help", "You are here"},
	}

	fmt.Fprintf(w, "\n  %s\n\n  %s\n\n  Commands:\n", title, quote)
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-22s", c.cmd)), descStyle.Render(c.desc))
	}
	fmt.Fprintf(w, "\n  %s\n\n", descStyle.Render("Run 'dateticket render --help' for render flags."))
}

func printRenderHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `Render a date ticket without the form.

Usage:
  dateticket render [flags]

Examples:
  dateticket render --name Aleida --date 2025-02-14T19:00
  dateticket render --photo us.jpg --format pdf --open
  dateticket render --date tbc --seed 14 --out-dir tickets

Flags:
%s`, fs.FlagUsages())
}

// printResult reports what a render wrote.
func printResult(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "\n  %s\n\n", tui.CodeBadge(res.Ticket.Code))
	if res.PNGPath != "" {
		fmt.Fprintf(w, "  %s  %s\n", cmdStyle.Render("png"), res.PNGPath)
	}
	if res.PDFPath != "" {
		fmt.Fprintf(w, "  %s  %s\n", cmdStyle.Render("pdf"), res.PDFPath)
	}
	if res.PhotoErr != nil {
		fmt.Fprintf(w, "  %s\n", warnStyle.Render("photo not used: "+res.PhotoErr.Error()))
	}
	line := valentineLines[rand.IntN(len(valentineLines))]
	fmt.Fprintf(w, "\n  %s\n\n", quoteStyle.Render(line))
}
