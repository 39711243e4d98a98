package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "service account",
			mutate: func(c *Config) { c.ServiceAccountPath = "/tmp/key.json" },
		},
		{
			name: "oauth",
			mutate: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "refresh"
			},
		},
		{
			name:    "no auth",
			mutate:  func(_ *Config) {},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "refresh"
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "negative retries",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.RetryAttempts = -1
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrepareReportData(t *testing.T) {
	report := &FunnelReport{
		GeneratedAt: time.Date(2024, 7, 3, 10, 30, 0, 0, time.Local),
		Filtered:    true,
		Total:       3,
		Summary: []CategorySummaryRow{
			{Category: "Ganho", Count: 2},
			{Category: "Perdido", Count: 1},
		},
		Deals: []DealRow{
			{Category: "Ganho", Pipeline: "Casamentos", DisplayID: "4821", Name: "Casamento Ana & Pedro"},
			{Category: "Ganho", Pipeline: "Formaturas", DisplayID: "4822", Name: "Formatura Direito"},
			{Category: "Perdido", Pipeline: "Comercial", DisplayID: "3998", Name: "Feira Agro 2024"},
		},
	}

	values := prepareReportData(report)

	require.NotEmpty(t, values)
	assert.Equal(t, "Funil de Negócios (filtrado)", values[0][0])

	// Summary rows come before the deal section.
	assert.Contains(t, values, []any{"Ganho", 2})
	assert.Contains(t, values, []any{"Total", 3})

	// Last row is the last deal.
	last := values[len(values)-1]
	assert.Equal(t, "3998", last[2])
}

func TestMockWriter(t *testing.T) {
	m := &MockWriter{}
	err := m.Write(context.Background(), &FunnelReport{Total: 1})
	require.NoError(t, err)
	assert.Len(t, m.Reports, 1)
}
