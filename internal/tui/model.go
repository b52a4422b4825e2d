// Package tui is the interactive single page: the task list on top and the
// "add a todo" form below it, driven by an app.App.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/app"
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
)

// fetchedMsg reports the outcome of a read-all.
type fetchedMsg struct{ err error }

// submittedMsg reports the outcome of a form submission.
type submittedMsg struct{ err error }

type Model struct {
	ctx         context.Context
	app         *app.App
	title       textinput.Model
	description textinput.Model
	focus       field
	submitting  bool
	alert       string
	status      string
	statusErr   bool
	width       int
	height      int
}

// New builds the page for a. ctx bounds every request the page issues.
func New(ctx context.Context, a *app.App) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 200
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description"
	description.Prompt = ""
	description.CharLimit = 500

	return Model{
		ctx:         ctx,
		app:         a,
		title:       title,
		description: description,
		focus:       fieldTitle,
		status:      "Loading...",
	}
}

// Run shows the page until the user quits or ctx is cancelled.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		return fetchedMsg{err: m.app.Mount(m.ctx)}
	}
}

func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{err: m.app.HandleSubmit(m.ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case fetchedMsg:
		if msg.err != nil {
			m.setStatus("Could not load tasks", true)
		} else {
			m.setStatus(fmt.Sprintf("%d task(s)", len(m.app.State().Tasks)), false)
		}
		return m, nil
	case submittedMsg:
		m.submitting = false
		switch {
		case errors.Is(msg.err, app.ErrTitleRequired):
			m.alert = app.TitleRequiredMessage
		case msg.err != nil:
			m.setStatus("Could not add task", true)
		default:
			m.setStatus("Task added", false)
		}
		m.syncInputs()
		return m, nil
	case tea.KeyMsg:
		if m.alert != "" {
			return m.handleAlertKeys(msg)
		}
		return m.handleFormKeys(msg)
	default:
		return m.updateFocused(msg)
	}
}

func (m Model) handleAlertKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", " ":
		m.alert = ""
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		if m.focus == fieldTitle {
			m.setFocus(fieldDescription)
		} else {
			m.setFocus(fieldTitle)
		}
		return m, nil
	case "ctrl+r":
		m.setStatus("Refreshing...", false)
		return m, m.fetch()
	case "enter":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.setStatus("Adding...", false)
		return m, m.submit()
	default:
		return m.updateFocused(msg)
	}
}

// updateFocused forwards msg to the focused input and binds its value to
// the app's form state.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldTitle {
		m.title, cmd = m.title.Update(msg)
		m.app.SetTitle(m.title.Value())
	} else {
		m.description, cmd = m.description.Update(msg)
		m.app.SetDescription(m.description.Value())
	}
	return m, cmd
}

func (m *Model) setFocus(f field) {
	m.focus = f
	if f == fieldTitle {
		m.title.Focus()
		m.description.Blur()
	} else {
		m.description.Focus()
		m.title.Blur()
	}
}

// syncInputs copies the app's form fields into the inputs, so a successful
// submission clears them and a failed one keeps them.
func (m *Model) syncInputs() {
	st := m.app.State()
	m.title.SetValue(st.Title)
	m.description.SetValue(st.Description)
	if st.Title == "" && st.Description == "" {
		m.setFocus(fieldTitle)
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
