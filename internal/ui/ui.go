// Package ui renders resolved videos and lets the user pick from a list.
package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

var accent = lipgloss.Color("205")

type item struct {
	index int
	title string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.title }

type picker struct {
	list   list.Model
	chosen int
	done   bool
}

func newPicker(prompt string, items []string) *picker {
	listItems := make([]list.Item, len(items))
	for i, s := range items {
		listItems[i] = item{index: i, title: s}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		Foreground(accent).
		Padding(0, 0, 0, 1)

	l := list.New(listItems, delegate, 80, 20)
	l.Title = prompt
	l.SetShowStatusBar(false)

	return &picker{list: l, chosen: -1}
}

func (p *picker) Init() tea.Cmd { return nil }

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := p.list.SelectedItem().(item); ok {
				p.chosen = it.index
			}
			p.done = true
			return p, tea.Quit
		case "q", "esc", "ctrl+c":
			p.done = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *picker) View() string {
	if p.done {
		return ""
	}
	return p.list.View()
}

// Select presents items in an interactive list and returns the chosen index.
func Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	final, err := tea.NewProgram(newPicker(prompt, items), tea.WithAltScreen()).Run()
	if err != nil {
		return -1, fmt.Errorf("running picker: %w", err)
	}

	p := final.(*picker)
	if p.chosen < 0 {
		return -1, ErrCancelled
	}
	return p.chosen, nil
}
