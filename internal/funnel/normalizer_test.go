package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(DefaultPipelineTable())

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "known id", raw: "75634529", want: "Eventos Corporativos"},
		{name: "default pipeline id", raw: "default", want: "Comercial"},
		{name: "already a display name", raw: "Casamentos", want: "Casamentos"},
		{name: "unknown id passes through", raw: "555000111", want: "555000111"},
		{name: "empty means no pipeline", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.raw))
		})
	}
}

func TestNormalizer_Descriptor(t *testing.T) {
	n := NewNormalizer(DefaultPipelineTable())

	d, ok := n.Descriptor("82114031")
	assert.True(t, ok)
	assert.Equal(t, "Casamentos", d.Name)
	assert.NotEmpty(t, d.Icon)
	assert.NotEmpty(t, d.Color)

	// Unknown pipelines still get a renderable plain badge.
	d, ok = n.Descriptor("made-up")
	assert.True(t, ok)
	assert.Equal(t, "made-up", d.Name)
	assert.Empty(t, d.Icon)

	_, ok = n.Descriptor("")
	assert.False(t, ok)
}

func TestNormalizer_Names(t *testing.T) {
	n := NewNormalizer(DefaultPipelineTable())

	names := n.Names()
	// Nine pipelines, each registered under id and name, deduplicated.
	assert.Len(t, names, 9)
	assert.Contains(t, names, "Comercial")
	assert.Contains(t, names, "Legado 2022")
}
