package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/app"
	"todo/internal/service"
	"todo/internal/testutil"
)

func newModel(t *testing.T, svc *testutil.FakeService) Model {
	t.Helper()
	return New(context.Background(), app.New(svc))
}

// step feeds msg to m and runs the returned command once, feeding its
// message back, the way the bubbletea runtime would for a single request.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch res := cmd().(type) {
	case fetchedMsg, submittedMsg:
		next, _ = m.Update(res)
		return next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func load(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(m.fetch()())
	return next.(Model)
}

func TestInitialLoad_RendersTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "")
	m := load(t, newModel(t, svc))

	view := m.View()
	if !strings.Contains(view, "A") {
		t.Errorf("expected task A in view:\n%s", view)
	}
	if strings.Contains(view, "No tasks yet") {
		t.Errorf("did not expect empty placeholder:\n%s", view)
	}
	if m.status != "1 task(s)" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestInitialLoad_Failure(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("connection refused")
	m := load(t, newModel(t, svc))

	if !m.statusErr {
		t.Error("expected error status")
	}
	if !strings.Contains(m.View(), "No tasks yet") {
		t.Error("expected empty list after failed load")
	}
}

func TestSubmit_BlankTitleShowsAlert(t *testing.T) {
	svc := testutil.NewFakeService()
	m := load(t, newModel(t, svc))

	m = typeText(t, m, "   ")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.alert != app.TitleRequiredMessage {
		t.Fatalf("expected alert, got %q", m.alert)
	}
	if svc.CreateCalls() != 0 {
		t.Errorf("expected no create call, got %d", svc.CreateCalls())
	}
	if !strings.Contains(m.View(), app.TitleRequiredMessage) {
		t.Error("expected alert in view")
	}

	// The alert blocks the form until dismissed.
	m = typeText(t, m, "x")
	if m.title.Value() != "   " {
		t.Errorf("typing behind the alert must be ignored, got %q", m.title.Value())
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.alert != "" {
		t.Error("expected alert dismissed")
	}
}

func TestSubmit_SuccessClearsForm(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "")
	m := load(t, newModel(t, svc))

	m = typeText(t, m, "B")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "x")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	created := svc.Created()
	if len(created) != 1 || created[0].Title != "B" || created[0].Description != "x" {
		t.Fatalf("expected B/x created, got %+v", created)
	}
	if m.title.Value() != "" || m.description.Value() != "" {
		t.Errorf("expected cleared inputs, got %q/%q", m.title.Value(), m.description.Value())
	}
	if m.focus != fieldTitle {
		t.Error("expected focus back on title")
	}

	view := m.View()
	a, b := strings.Index(view, "A"), strings.Index(view, "B\n")
	if a < 0 || b < 0 || a > b {
		t.Errorf("expected A before B in view:\n%s", view)
	}
}

func TestSubmit_FailureKeepsForm(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = &service.StatusError{Op: "create", Code: 500}
	m := load(t, newModel(t, svc))

	m = typeText(t, m, "B")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.title.Value() != "B" {
		t.Errorf("expected title kept, got %q", m.title.Value())
	}
	if !m.statusErr || m.status != "Could not add task" {
		t.Errorf("unexpected status %q (err=%v)", m.status, m.statusErr)
	}
	if svc.ListCalls() != 1 {
		t.Errorf("expected only the initial read, got %d", svc.ListCalls())
	}
}

func TestEnterIgnoredWhileSubmitting(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)
	m = typeText(t, m, "B")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil || !m.submitting {
		t.Fatal("expected a pending submission")
	}

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if again != nil {
		t.Error("second enter must not start another submission")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newModel(t, testutil.NewFakeService())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRenderTask(t *testing.T) {
	got := renderTask(service.Task{Title: "A"})
	if !strings.Contains(got, "A") || strings.Contains(got, "\n") {
		t.Errorf("expected single line with title, got %q", got)
	}

	got = renderTask(service.Task{Title: "B", Description: "x"})
	if !strings.Contains(got, "B") || !strings.Contains(got, "x") {
		t.Errorf("expected title and description, got %q", got)
	}

	got = renderTask(service.Task{Title: "  "})
	if !strings.Contains(got, "(untitled)") {
		t.Errorf("expected untitled placeholder, got %q", got)
	}
}
