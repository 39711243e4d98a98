package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeal_CreatedTime(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		wantOK    bool
		wantYear  int
	}{
		{name: "rfc3339", createdAt: "2024-03-15T10:42:07-03:00", wantOK: true, wantYear: 2024},
		{name: "no offset", createdAt: "2024-03-15T10:42:07", wantOK: true, wantYear: 2024},
		{name: "bare date", createdAt: "2023-11-02", wantOK: true, wantYear: 2023},
		{name: "empty", createdAt: "", wantOK: false},
		{name: "garbage", createdAt: "15/03/2024", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Deal{CreatedAt: tt.createdAt}.CreatedTime()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantYear, got.Year())
			}
		})
	}
}

func TestDeal_CreatedTime_BareDateIsLocalMidnight(t *testing.T) {
	got, ok := Deal{CreatedAt: "2024-01-01"}.CreatedTime()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), got)
}
