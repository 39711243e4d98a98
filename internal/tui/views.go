package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/common"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateLoading:
		content = m.renderLoading()
	case StateFiltering:
		content = m.filterForm.View()
	case StateError:
		content = m.renderError()
	default:
		content = m.renderBrowsing()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Funil de Negócios")
	if m.state != StateBrowsing {
		return title
	}

	subtitle := fmt.Sprintf("%d negócios", totalCount(m.counts))
	if m.cached {
		subtitle += " · cache"
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Subtitle.Render(subtitle))
}

func (m Model) renderLoading() string {
	content := m.progressUI.View()
	if content == "" {
		// First report has not arrived yet.
		content = m.theme.StatusPending.Render("Carregando…")
	}

	return lipgloss.Place(
		m.width,
		max(m.height-4, 1),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func (m Model) renderBrowsing() string {
	var sections []string

	if !m.criteria.IsZero() {
		summary := fmt.Sprintf("Filtros ativos · %d negócios", totalCount(m.counts))
		sections = append(sections, m.theme.StatusInfo.Render(summary))
	}
	sections = append(sections, m.funnelList.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderError() string {
	msg := common.UserMessage(m.lastError, "Não foi possível carregar os negócios.")
	if errors.Is(m.lastError, loader.ErrTimeout) {
		msg = "O CRM demorou demais para responder. Tente novamente com r."
	}

	return m.theme.BorderedBox.Render(
		m.theme.StatusError.Render("Erro") + "\n\n" + m.theme.Normal.Render(msg),
	)
}

func (m Model) renderStatusBar() string {
	if m.state == StateFiltering {
		return ""
	}

	hints := []string{
		"enter expandir",
		"m mais",
		"E/C tudo",
		"f filtros",
	}
	if !m.criteria.IsZero() {
		hints = append(hints, "x limpar")
	}
	hints = append(hints, "r recarregar", "q sair")

	return m.theme.Muted.Render(strings.Join(hints, " · "))
}

func totalCount(counts map[model.CanonicalCategory]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
