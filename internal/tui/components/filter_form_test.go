package components

import (
	"testing"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm() FilterFormModel {
	return NewFilterForm(themes.Default, funnel.NewNormalizer(funnel.DefaultPipelineTable()))
}

func TestFilterForm_EmptyFormYieldsZeroCriteria(t *testing.T) {
	m := newTestForm()

	criteria, ok := m.Criteria()
	require.True(t, ok)
	assert.True(t, criteria.IsZero())
}

func TestFilterForm_CollectsFields(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldSearch].SetValue("congresso")
	m.inputs[fieldCompany].SetValue("Acme")
	m.inputs[fieldCity].SetValue("Campinas")

	criteria, ok := m.Criteria()
	require.True(t, ok)
	assert.Equal(t, "congresso", criteria.Search)
	assert.Equal(t, "Acme", criteria.Company)
	assert.Equal(t, "Campinas", criteria.City)
}

func TestFilterForm_PipelineEntriesNormalized(t *testing.T) {
	m := newTestForm()
	// Raw pipeline id and a display name mix in one list.
	m.inputs[fieldPipelines].SetValue("82114031, Formaturas")

	criteria, ok := m.Criteria()
	require.True(t, ok)
	assert.Equal(t, []string{"Casamentos", "Formaturas"}, criteria.Pipelines)
}

func TestFilterForm_CategoryEntriesParsed(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldCategories].SetValue("leads, won")

	criteria, ok := m.Criteria()
	require.True(t, ok)
	assert.Equal(t, []model.CanonicalCategory{model.CategoryLeads, model.CategoryWon}, criteria.Categories)
}

func TestFilterForm_UnknownCategoryRejected(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldCategories].SetValue("banana")

	_, ok := m.Criteria()
	assert.False(t, ok)
	assert.NotEmpty(t, m.errs[fieldCategories])
}

func TestFilterForm_MixedCategoryListKeepsKnownEntries(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldCategories].SetValue("leads, banana, won")

	criteria, ok := m.Criteria()
	assert.False(t, ok)
	assert.Contains(t, m.errs[fieldCategories], "banana")
	// Known entries still land in the criteria so the inline error points at
	// the one bad token, not the whole list.
	assert.Equal(t, []model.CanonicalCategory{model.CategoryLeads, model.CategoryWon}, criteria.Categories)
}

func TestFilterForm_DateParsing(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldCreatedFrom].SetValue("2024-05-01")
	m.inputs[fieldCreatedTo].SetValue("2024-05-31")

	criteria, ok := m.Criteria()
	require.True(t, ok)
	require.NotNil(t, criteria.CreatedFrom)
	require.NotNil(t, criteria.CreatedTo)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), *criteria.CreatedFrom)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.Local), *criteria.CreatedTo)
}

func TestFilterForm_BadDateRejected(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldCreatedFrom].SetValue("31/05/2024")

	_, ok := m.Criteria()
	assert.False(t, ok)
	assert.NotEmpty(t, m.errs[fieldCreatedFrom])
}

func TestFilterForm_RoundTripsCriteria(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	original := funnel.FilterCriteria{
		Search:      "ana",
		Pipelines:   []string{"Casamentos"},
		Categories:  []model.CanonicalCategory{model.CategoryWon},
		CNPJ:        "12.345",
		CreatedFrom: &from,
	}

	m := newTestForm().SetCriteria(original)
	criteria, ok := m.Criteria()
	require.True(t, ok)
	assert.Equal(t, original, criteria)
}

func TestFilterForm_EnterEmitsApply(t *testing.T) {
	m := newTestForm()
	m.inputs[fieldSearch].SetValue("x")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(ApplyFilterMsg)
	require.True(t, ok)
	assert.Equal(t, "x", msg.Criteria.Search)
}

func TestFilterForm_EscEmitsCancel(t *testing.T) {
	m := newTestForm()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelFilterMsg{}, cmd())
}

func TestFilterForm_TabCyclesFocus(t *testing.T) {
	m := newTestForm()
	assert.Equal(t, fieldSearch, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldPipelines, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldCreatedTo, m.focus)
}
