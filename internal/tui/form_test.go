package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func filledForm() formModel {
	when := time.Date(2025, 2, 15, 1, 0, 0, 0, time.UTC)
	return newFormModel(formValues{
		Name:     "Aleida",
		Question: "Will you be my Valentine's date?",
		Date:     &when,
	})
}

func TestFormPrefillsDate(t *testing.T) {
	m := filledForm()
	if got := m.fields[fieldDate]; got != "2025-02-14T19:00" {
		t.Errorf("date field = %q, want 2025-02-14T19:00", got)
	}
}

func TestFormFocusCycles(t *testing.T) {
	m := filledForm()
	for i := 0; i < int(numFields); i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.focus != fieldName {
		t.Errorf("after %d tabs focus = %d, want %d", numFields, m.focus, fieldName)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldPhoto {
		t.Errorf("shift+tab from first field focus = %d, want %d", m.focus, fieldPhoto)
	}
}

func TestFormTyping(t *testing.T) {
	m := newFormModel(formValues{})
	m, _ = m.Update(runes("Alex"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(runes("B"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.fields[fieldName]; got != "Alex " {
		t.Errorf("name = %q, want %q", got, "Alex ")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if got := m.fields[fieldName]; got != "" {
		t.Errorf("ctrl+u left %q", got)
	}
}

func TestFormSpecValidation(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*formModel)
		wantErr string
	}{
		{"valid", func(*formModel) {}, ""},
		{"missing name", func(m *formModel) { m.fields[fieldName] = "  " }, "name is required"},
		{"missing question", func(m *formModel) { m.fields[fieldQuestion] = "" }, "question is required"},
		{"bad date", func(m *formModel) { m.fields[fieldDate] = "Feb 14" }, "date must look like"},
		{"blank date is allowed", func(m *formModel) { m.fields[fieldDate] = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := filledForm()
			tt.edit(&m)
			_, err := m.spec()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("spec() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("spec() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestFormBlankDateIsUnconfirmed(t *testing.T) {
	m := filledForm()
	m.fields[fieldDate] = ""
	spec, err := m.spec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.TargetDate != nil {
		t.Errorf("TargetDate = %v, want nil", spec.TargetDate)
	}
}

func TestFormSubmitEmitsSpec(t *testing.T) {
	m := filledForm()
	m.fields[fieldPhoto] = "  ./us.jpg "
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s returned no command")
	}
	msg, ok := cmd().(submitMsg)
	if !ok {
		t.Fatalf("command produced %T, want submitMsg", cmd())
	}
	if msg.spec.RecipientName != "Aleida" || msg.photo != "./us.jpg" {
		t.Errorf("submit = %+v", msg)
	}
	if m.statusMsg != "" {
		t.Errorf("status = %q after valid submit", m.statusMsg)
	}
}

func TestFormSubmitInvalidShowsStatus(t *testing.T) {
	m := newFormModel(formValues{})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("invalid form should not emit a command")
	}
	if !strings.Contains(m.View(80), "name is required") {
		t.Errorf("view does not show validation error:\n%s", m.View(80))
	}
}

func TestFormEnterOnLastFieldSubmits(t *testing.T) {
	m := filledForm()
	m.focus = fieldPhoto
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on last field should submit")
	}
	if _, ok := cmd().(submitMsg); !ok {
		t.Error("enter on last field did not produce submitMsg")
	}
}
