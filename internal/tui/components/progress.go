package components

import (
	"fmt"
	"strings"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressModel renders the four-step loading indicator with a percent bar
// for the active step.
type ProgressModel struct {
	theme themes.Theme
	view  viewmodel.LoadProgressView
	bar   progress.Model
	width int
}

// NewProgress creates a new progress indicator.
func NewProgress(theme themes.Theme) ProgressModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return ProgressModel{
		theme: theme,
		bar:   bar,
		width: 80,
	}
}

// SetView replaces the rendered progress state.
func (m ProgressModel) SetView(view viewmodel.LoadProgressView) ProgressModel {
	m.view = view
	return m
}

// Update handles messages.
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.bar.Width = min(m.width-8, 40)
	}
	return m, nil
}

// View renders the step list and the active step's bar.
func (m ProgressModel) View() string {
	if !m.view.Loading {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Carregando negócios"))
	b.WriteString("\n")

	states := m.view.StepStates()
	for i, state := range states {
		label := m.view.StepLabel(i)
		switch state {
		case viewmodel.StepDone:
			b.WriteString(m.theme.StepDone.Render("✓ " + label))
		case viewmodel.StepActive:
			b.WriteString(m.theme.StepActive.Render("▸ " + label))
			b.WriteString(fmt.Sprintf(" %d%%", m.view.Percent))
		default:
			b.WriteString(m.theme.StepPending.Render("· " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(m.view.Percent) / 100))
	return m.theme.RoundedBox.Render(b.String())
}
