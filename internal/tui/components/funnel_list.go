package components

import (
	"fmt"
	"strings"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListKeyMap defines the funnel list's keyboard shortcuts.
type ListKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	LoadMore    key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
}

// DefaultListKeyMap returns the default funnel list key bindings.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "descer"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expandir/recolher"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "carregar mais"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "expandir tudo"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "recolher tudo"),
		),
	}
}

// FunnelListModel renders the funnel sections and routes disclosure keys to
// the root model. It is purely presentational: disclosure state lives in the
// engine layer and reaches this component only through the view model.
type FunnelListModel struct {
	theme  themes.Theme
	keymap ListKeyMap
	view   viewmodel.FunnelView
	cursor int
	width  int
	height int
}

// NewFunnelList creates a new funnel list.
func NewFunnelList(theme themes.Theme) FunnelListModel {
	return FunnelListModel{
		theme:  theme,
		keymap: DefaultListKeyMap(),
		width:  80,
		height: 24,
	}
}

// SetView replaces the rendered view model, clamping the cursor to the new
// section count.
func (m FunnelListModel) SetView(view viewmodel.FunnelView) FunnelListModel {
	m.view = view
	if m.cursor >= len(view.Sections) {
		m.cursor = len(view.Sections) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// Cursor returns the index of the highlighted section.
func (m FunnelListModel) Cursor() int {
	return m.cursor
}

// Update handles messages.
func (m FunnelListModel) Update(msg tea.Msg) (FunnelListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m FunnelListModel) handleKey(msg tea.KeyMsg) (FunnelListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.view.Sections)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Toggle):
		if section, ok := m.current(); ok {
			cat := section.Category
			return m, func() tea.Msg { return ToggleSectionMsg{Category: cat} }
		}

	case key.Matches(msg, m.keymap.LoadMore):
		if section, ok := m.current(); ok && section.CanLoadMore {
			cat := section.Category
			return m, func() tea.Msg { return LoadMoreMsg{Category: cat} }
		}

	case key.Matches(msg, m.keymap.ExpandAll):
		return m, func() tea.Msg { return SetAllExpandedMsg{Expanded: true} }

	case key.Matches(msg, m.keymap.CollapseAll):
		return m, func() tea.Msg { return SetAllExpandedMsg{Expanded: false} }
	}

	return m, nil
}

func (m FunnelListModel) current() (viewmodel.CategorySectionView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Sections) {
		return viewmodel.CategorySectionView{}, false
	}
	return m.view.Sections[m.cursor], true
}

// View renders the funnel list.
func (m FunnelListModel) View() string {
	if m.view.IsEmpty() {
		if m.view.HasFilter {
			return m.theme.Muted.Render("Nenhum negócio corresponde aos filtros.")
		}
		return m.theme.Muted.Render("Nenhum negócio carregado.")
	}

	var b strings.Builder
	for i, section := range m.view.Sections {
		b.WriteString(m.renderSectionHeader(section, i == m.cursor))
		b.WriteString("\n")

		if !section.Expanded {
			continue
		}

		for _, deal := range section.Deals {
			b.WriteString(m.renderDealRow(deal))
			b.WriteString("\n")
		}
		if section.HiddenCount > 0 {
			hint := fmt.Sprintf("  … mais %d (m para carregar)", section.HiddenCount)
			b.WriteString(m.theme.Muted.Render(hint))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m FunnelListModel) renderSectionHeader(section viewmodel.CategorySectionView, selected bool) string {
	marker := "▸"
	if section.Expanded {
		marker = "▾"
	}

	header := fmt.Sprintf("%s %s %s",
		marker,
		section.Label,
		m.theme.SectionCount.Render(fmt.Sprintf("(%d)", section.Count)),
	)

	if selected {
		return m.theme.Selected.Render(header)
	}
	return m.theme.SectionHeader.Render(header)
}

func (m FunnelListModel) renderDealRow(deal viewmodel.DealRowView) string {
	parts := []string{"  " + m.theme.Normal.Render(deal.Name)}

	if deal.DisplayID != "" {
		parts = append(parts, m.theme.Muted.Render("#"+deal.DisplayID))
	}
	if deal.PipelineName != "" {
		badge := strings.TrimSpace(deal.PipelineIcon + " " + deal.PipelineName)
		style := m.theme.PipelineBadge
		if deal.PipelineColor != "" {
			style = style.Foreground(lipgloss.Color(deal.PipelineColor))
		}
		parts = append(parts, style.Render(badge))
	}
	if deal.Company != "" {
		parts = append(parts, m.theme.Muted.Render(deal.Company))
	}
	if deal.Location != "" {
		parts = append(parts, m.theme.Muted.Render(deal.Location))
	}
	if deal.CreatedAt != "" {
		parts = append(parts, m.theme.Muted.Render(deal.CreatedAt))
	}

	return strings.Join(parts, "  ")
}
