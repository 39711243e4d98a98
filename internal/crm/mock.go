package crm

import (
	"context"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// MockFetcher is a configurable test double for DealFetcher.
type MockFetcher struct {
	Payload *model.GroupedDeals
	Err     error

	// Reports are replayed into the progress callback before returning.
	Reports []MockReport

	// Calls counts FetchGroupedDeals invocations.
	Calls int
}

// MockReport is one scripted progress report.
type MockReport struct {
	Step    int
	Percent int
	Label   string
}

// FetchGroupedDeals implements DealFetcher.
func (m *MockFetcher) FetchGroupedDeals(ctx context.Context, progress ProgressFunc) (*model.GroupedDeals, error) {
	m.Calls++

	for _, r := range m.Reports {
		if progress != nil {
			progress(r.Step, r.Percent, r.Label)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payload, nil
}
