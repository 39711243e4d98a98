package components

import (
	"testing"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
)

func TestProgress_HiddenWhenIdle(t *testing.T) {
	m := NewProgress(themes.Default)

	m = m.SetView(viewmodel.LoadProgressView{Loading: false, Step: 2, Percent: 60})
	assert.Empty(t, m.View())
}

func TestProgress_ShowsStepsAndPercent(t *testing.T) {
	m := NewProgress(themes.Default)

	m = m.SetView(viewmodel.LoadProgressView{
		Loading: true,
		Step:    1,
		Percent: 25,
		Label:   "Buscando negócios",
	})
	out := m.View()

	assert.Contains(t, out, "Conectando ao CRM")
	assert.Contains(t, out, "Buscando negócios")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "✓")
}
