package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/dateticket/pkg/domain"
)

type formField int

const (
	fieldName formField = iota
	fieldQuestion
	fieldDate
	fieldLocation
	fieldPhoto
	numFields
)

var fieldLabels = [numFields]string{"name", "question", "date", "location", "photo"}

var fieldHints = [numFields]string{
	"",
	"",
	"YYYY-MM-DDTHH:MM, " + domain.DisplayZoneLabel + ", blank for " + domain.TBC,
	"blank for " + domain.DefaultLocation,
	"file path or http(s) URL, blank for hearts",
}

// formModel collects the ticket fields.
type formModel struct {
	fields    [numFields]string
	focus     formField
	statusMsg string
}

// formValues seeds the form.
type formValues struct {
	Name, Question, Location, Photo string
	Date                            *time.Time
}

func newFormModel(v formValues) formModel {
	var m formModel
	m.fields[fieldName] = v.Name
	m.fields[fieldQuestion] = v.Question
	m.fields[fieldLocation] = v.Location
	m.fields[fieldPhoto] = v.Photo
	if v.Date != nil {
		m.fields[fieldDate] = domain.FormatLocalInput(*v.Date)
	}
	return m
}

// submitMsg asks the app to export the form's ticket.
type submitMsg struct {
	spec  domain.TicketSpec
	photo string
}

func (m formModel) Update(msg tea.KeyMsg) (formModel, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numFields) % numFields
	case "enter":
		if m.focus == numFields-1 {
			return m.submit()
		}
		m.focus++
	case "ctrl+u":
		m.fields[m.focus] = ""
	case "backspace":
		f := &m.fields[m.focus]
		*f = editRune(*f, "backspace")
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			f := &m.fields[m.focus]
			for _, r := range msg.Runes {
				*f = editRune(*f, string(r))
			}
		}
	}
	return m, nil
}

// spec validates the fields and builds a TicketSpec.
func (m formModel) spec() (domain.TicketSpec, error) {
	name := strings.TrimSpace(m.fields[fieldName])
	question := strings.TrimSpace(m.fields[fieldQuestion])
	if name == "" {
		return domain.TicketSpec{}, fmt.Errorf("name is required")
	}
	if question == "" {
		return domain.TicketSpec{}, fmt.Errorf("question is required")
	}
	spec := domain.TicketSpec{
		RecipientName: name,
		QuestionText:  question,
		Location:      strings.TrimSpace(m.fields[fieldLocation]),
	}
	if raw := strings.TrimSpace(m.fields[fieldDate]); raw != "" {
		t, err := domain.ParseLocalInput(raw)
		if err != nil {
			return domain.TicketSpec{}, fmt.Errorf("date must look like 2025-02-14T19:00")
		}
		spec.TargetDate = &t
	}
	return spec, nil
}

func (m formModel) submit() (formModel, tea.Cmd) {
	spec, err := m.spec()
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	photo := strings.TrimSpace(m.fields[fieldPhoto])
	return m, func() tea.Msg {
		return submitMsg{spec: spec, photo: photo}
	}
}

func (m formModel) View(width int) string {
	var b strings.Builder

	for i := formField(0); i < numFields; i++ {
		value := m.fields[i]
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = accentStyle.Render(">")
			style = selectedStyle
		}

		label := style.Render(fmt.Sprintf("%-9s", fieldLabels[i]))
		display := normalStyle.Render(truncStr(value, max(width-16, 12)))
		if i == m.focus {
			display += accentStyle.Render("█")
		}
		fmt.Fprintf(&b, " %s %s %s\n", cursor, label, display)
		if i == m.focus && fieldHints[i] != "" {
			fmt.Fprintf(&b, "             %s\n", dimStyle.Render(fieldHints[i]))
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + errorStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}
