// Package tui is the interactive ticket form.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/dateticket/internal/browser"
	"github.com/naveenspark/dateticket/internal/pipeline"
	"github.com/naveenspark/dateticket/pkg/domain"
	"github.com/naveenspark/dateticket/pkg/ticket"
)

// Options configures the App. Copy and Open default to the system
// clipboard and the default viewer.
type Options struct {
	Exporter pipeline.Exporter

	Name, Question, Location, Title, Photo string
	Date                                   *time.Time

	PNGPath, PDFPath string
	PDF              ticket.PDFOptions

	Copy func(string) error
	Open func(string) error
}

type exportDoneMsg struct {
	res *pipeline.Result
	err error
}

type copyResultMsg struct {
	code string
	err  error
}

type openResultMsg struct {
	path string
	err  error
}

// App is the root Bubbletea model.
type App struct {
	opts      Options
	form      formModel
	exporting bool
	last      *pipeline.Result
	spec      domain.TicketSpec
	status    string
	statusErr bool
	width     int
	height    int
	frame     int // logo shimmer animation frame
}

// NewApp creates the form, prefilled from opts.
func NewApp(opts Options) App {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Open == nil {
		opts.Open = browser.Open
	}
	return App{
		opts: opts,
		form: newFormModel(formValues{
			Name:     opts.Name,
			Question: opts.Question,
			Location: opts.Location,
			Photo:    opts.Photo,
			Date:     opts.Date,
		}),
	}
}

func (a App) Init() tea.Cmd {
	return shimmerTickCmd()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case submitMsg:
		if a.exporting {
			return a, nil
		}
		a.exporting = true
		a.setStatus("rendering...", false)
		spec := msg.spec
		spec.Title = a.opts.Title
		a.spec = spec
		return a, a.export(spec, msg.photo)

	case exportDoneMsg:
		a.exporting = false
		if msg.res != nil {
			a.last = msg.res
		}
		switch {
		case msg.err != nil && msg.res != nil && msg.res.PNGPath != "":
			a.setStatus(fmt.Sprintf("pdf failed, png saved to %s: %v", shortPath(msg.res.PNGPath), msg.err), true)
		case msg.err != nil:
			a.setStatus(fmt.Sprintf("export failed: %v", msg.err), true)
		case msg.res == nil:
			a.setStatus("export failed: no result", true)
		case msg.res.PhotoErr != nil:
			a.setStatus("saved; photo could not be used, hearts drawn instead", false)
		default:
			a.setStatus("saved!", false)
		}
		return a, nil

	case copyResultMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			a.setStatus("copied "+msg.code, false)
		}
		return a, nil

	case openResultMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("open failed: %v", msg.err), true)
		} else {
			a.setStatus("opened "+shortPath(msg.path), false)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "ctrl+y":
			if a.last == nil || a.last.Ticket == nil {
				a.setStatus("nothing rendered yet (ctrl+s)", true)
				return a, nil
			}
			code := a.last.Ticket.Code
			copyFn := a.opts.Copy
			return a, func() tea.Msg {
				return copyResultMsg{code: code, err: copyFn(code)}
			}
		case "ctrl+o":
			if a.last == nil || a.last.PDFPath == "" {
				a.setStatus("no pdf yet (ctrl+s)", true)
				return a, nil
			}
			path := a.last.PDFPath
			openFn := a.opts.Open
			return a, func() tea.Msg {
				return openResultMsg{path: path, err: openFn(path)}
			}
		}
		if a.exporting && msg.String() == "ctrl+s" {
			return a, nil
		}
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		if a.form.statusMsg != "" {
			a.status = ""
		}
		return a, cmd
	}
	return a, nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a App) export(spec domain.TicketSpec, photo string) tea.Cmd {
	exp := a.opts.Exporter
	req := pipeline.Request{
		Spec:        spec,
		PhotoSource: photo,
		PNGPath:     a.opts.PNGPath,
		PDFPath:     a.opts.PDFPath,
		PDF:         a.opts.PDF,
	}
	return func() tea.Msg {
		if exp == nil {
			return exportDoneMsg{err: fmt.Errorf("no exporter configured")}
		}
		res, err := exp.Export(context.Background(), req)
		return exportDoneMsg{res: res, err: err}
	}
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	pad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", pad) + logo

	var body strings.Builder
	body.WriteString(a.form.View(a.width))

	if a.last != nil && a.last.Ticket != nil {
		body.WriteString("\n" + a.preview() + "\n")
	}

	status := ""
	switch {
	case a.exporting:
		status = " " + dimStyle.Render("rendering...")
	case a.status != "" && a.statusErr:
		status = " " + errorStyle.Render(a.status)
	case a.status != "":
		status = " " + successStyle.Render(a.status)
	}

	help := helpBar(
		[2]string{"tab", "next"},
		[2]string{"ctrl+s", "render"},
		[2]string{"ctrl+y", "copy code"},
		[2]string{"ctrl+o", "open pdf"},
		[2]string{"esc", "quit"},
	)

	// Chrome: header(1) + blank(1) + status(1) + help(1)
	out := strings.TrimRight(truncateToHeight(body.String(), a.height-4), "\n")
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, out, status, help)
}

// preview summarises the last rendered ticket.
func (a App) preview() string {
	t := a.last.Ticket
	lines := []string{
		CodeBadge(t.Code),
		normalStyle.Render("For: " + a.spec.RecipientName),
		normalStyle.Render("Date: " + domain.FormatTargetDate(a.spec.TargetDate)),
		normalStyle.Render("Location: " + a.spec.DisplayLocation()),
	}
	if a.last.PNGPath != "" {
		lines = append(lines, dimStyle.Render("png  "+a.last.PNGPath))
	}
	if a.last.PDFPath != "" {
		lines = append(lines, dimStyle.Render("pdf  "+a.last.PDFPath))
	}
	return previewStyle.Render(strings.Join(lines, "\n"))
}
