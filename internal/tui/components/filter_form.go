package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Filter form field indexes, in tab order.
const (
	fieldSearch = iota
	fieldPipelines
	fieldCategories
	fieldName
	fieldDisplayID
	fieldCompany
	fieldCNPJ
	fieldPostalCode
	fieldCity
	fieldState
	fieldStreet
	fieldPlaceID
	fieldCreatedFrom
	fieldCreatedTo
	fieldCount
)

const dateInputLayout = "2006-01-02"

// FilterFormModel is the faceted filter entry form. One text input per facet;
// pipelines and categories take comma-separated lists, dates take YYYY-MM-DD.
type FilterFormModel struct {
	theme      themes.Theme
	normalizer *funnel.Normalizer
	inputs     [fieldCount]textinput.Model
	labels     [fieldCount]string
	errs       [fieldCount]string
	focus      int
	width      int
}

// NewFilterForm creates a filter form. The normalizer resolves pipeline
// entries typed as raw ids to their display names.
func NewFilterForm(theme themes.Theme, normalizer *funnel.Normalizer) FilterFormModel {
	m := FilterFormModel{
		theme:      theme,
		normalizer: normalizer,
		width:      80,
		labels: [fieldCount]string{
			"Busca",
			"Pipelines",
			"Etapas",
			"Nome",
			"ID",
			"Empresa",
			"CNPJ",
			"CEP",
			"Cidade",
			"UF",
			"Rua",
			"Place ID",
			"Criado de",
			"Criado até",
		},
	}

	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 80
		in.Prompt = ""
		m.inputs[i] = in
	}
	m.inputs[fieldPipelines].Placeholder = "Casamentos, Formaturas"
	m.inputs[fieldCategories].Placeholder = "leads, won"
	m.inputs[fieldCreatedFrom].Placeholder = dateInputLayout
	m.inputs[fieldCreatedTo].Placeholder = dateInputLayout
	m.inputs[fieldSearch].Focus()

	return m
}

// SetCriteria pre-fills the form from the active criteria so reopening the
// form shows what is currently applied.
func (m FilterFormModel) SetCriteria(c funnel.FilterCriteria) FilterFormModel {
	m.inputs[fieldSearch].SetValue(c.Search)
	m.inputs[fieldPipelines].SetValue(strings.Join(c.Pipelines, ", "))

	cats := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		cats = append(cats, cat.String())
	}
	m.inputs[fieldCategories].SetValue(strings.Join(cats, ", "))

	m.inputs[fieldName].SetValue(c.Name)
	m.inputs[fieldDisplayID].SetValue(c.DisplayID)
	m.inputs[fieldCompany].SetValue(c.Company)
	m.inputs[fieldCNPJ].SetValue(c.CNPJ)
	m.inputs[fieldPostalCode].SetValue(c.PostalCode)
	m.inputs[fieldCity].SetValue(c.City)
	m.inputs[fieldState].SetValue(c.State)
	m.inputs[fieldStreet].SetValue(c.Street)
	m.inputs[fieldPlaceID].SetValue(c.PlaceID)

	if c.CreatedFrom != nil {
		m.inputs[fieldCreatedFrom].SetValue(c.CreatedFrom.Format(dateInputLayout))
	}
	if c.CreatedTo != nil {
		m.inputs[fieldCreatedTo].SetValue(c.CreatedTo.Format(dateInputLayout))
	}

	return m
}

// Update handles messages.
func (m FilterFormModel) Update(msg tea.Msg) (FilterFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CancelFilterMsg{} }

		case "enter":
			criteria, ok := m.Criteria()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return ApplyFilterMsg{Criteria: criteria} }

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m FilterFormModel) moveFocus(delta int) FilterFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// Criteria assembles FilterCriteria from the form fields. ok is false when a
// field fails to parse; the offending field gets an inline error and the form
// stays open.
func (m *FilterFormModel) Criteria() (funnel.FilterCriteria, bool) {
	m.errs = [fieldCount]string{}
	ok := true

	criteria := funnel.FilterCriteria{
		Search:     m.inputs[fieldSearch].Value(),
		Name:       m.inputs[fieldName].Value(),
		DisplayID:  m.inputs[fieldDisplayID].Value(),
		Company:    m.inputs[fieldCompany].Value(),
		CNPJ:       m.inputs[fieldCNPJ].Value(),
		PostalCode: m.inputs[fieldPostalCode].Value(),
		City:       m.inputs[fieldCity].Value(),
		State:      m.inputs[fieldState].Value(),
		Street:     m.inputs[fieldStreet].Value(),
		PlaceID:    m.inputs[fieldPlaceID].Value(),
	}

	for _, entry := range splitList(m.inputs[fieldPipelines].Value()) {
		criteria.Pipelines = append(criteria.Pipelines, m.normalizer.Normalize(entry))
	}

	for _, entry := range splitList(m.inputs[fieldCategories].Value()) {
		cat, known := model.ParseCategory(entry)
		if !known {
			m.errs[fieldCategories] = fmt.Sprintf("etapa desconhecida: %s", entry)
			ok = false
			continue
		}
		criteria.Categories = append(criteria.Categories, cat)
	}

	var parseOK bool
	criteria.CreatedFrom, parseOK = m.parseDate(fieldCreatedFrom)
	ok = ok && parseOK
	criteria.CreatedTo, parseOK = m.parseDate(fieldCreatedTo)
	ok = ok && parseOK

	return criteria, ok
}

func (m *FilterFormModel) parseDate(field int) (*time.Time, bool) {
	raw := strings.TrimSpace(m.inputs[field].Value())
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(dateInputLayout, raw, time.Local)
	if err != nil {
		m.errs[field] = "use o formato AAAA-MM-DD"
		return nil, false
	}
	return &t, true
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// View renders the form.
func (m FilterFormModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Filtros"))
	b.WriteString("\n")

	for i := range m.inputs {
		label := m.labels[i]
		if i == m.focus {
			label = m.theme.Bold.Render(label)
		} else {
			label = m.theme.Muted.Render(label)
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(12).Render(label),
			m.inputs[i].View(),
		))
		if m.errs[i] != "" {
			b.WriteString("  ")
			b.WriteString(m.theme.StatusError.Render(m.errs[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("enter aplica · esc cancela · tab navega"))
	return m.theme.RoundedBox.Render(b.String())
}
