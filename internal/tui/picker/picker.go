// Package picker renders a single-choice prompt over a list of candidate
// files. It implements link.Prompter for the CLI.
package picker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/notelink/pkg/models"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// fileItem implements the list.Item interface for candidate files.
type fileItem struct {
	file models.NoteFile
}

func (i fileItem) FilterValue() string { return i.file.Basename }
func (i fileItem) Title() string       { return i.file.Basename }
func (i fileItem) Description() string { return i.file.Path }

// fileDelegate is a custom delegate with minimal spacing for the candidate list
type fileDelegate struct{}

func (d fileDelegate) Height() int                             { return 1 }
func (d fileDelegate) Spacing() int                            { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(fileItem)
	if !ok {
		return
	}

	line := i.file.Basename + " " + pathStyle.Render(i.file.Path)
	if index == m.Index() {
		line = selectedStyle.Render("│ " + line)
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}

// Model is the single-choice prompt model.
type Model struct {
	list      list.Model
	choice    *models.NoteFile
	cancelled bool
}

func newModel(title string, candidates []models.NoteFile) Model {
	items := make([]list.Item, len(candidates))
	for i, f := range candidates {
		items[i] = fileItem{file: f}
	}

	l := list.New(items, fileDelegate{}, 60, 14)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)

	return Model{list: l}
}

// Init initializes the prompt.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(fileItem); ok {
				f := item.file
				m.choice = &f
			}
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the candidate list.
func (m Model) View() string {
	return m.list.View()
}

// Picker runs the prompt as a standalone bubbletea program.
type Picker struct{}

// New creates a Picker.
func New() *Picker {
	return &Picker{}
}

// Pick shows the candidates and blocks until the user accepts one or
// cancels. Cancellation returns nil with no error.
func (p *Picker) Pick(title string, candidates []models.NoteFile) (*models.NoteFile, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	prog := tea.NewProgram(newModel(title, candidates))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.cancelled {
		return nil, nil
	}
	return m.choice, nil
}
