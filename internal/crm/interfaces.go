// Package crm consumes the deal-fetch collaborator: a parameterless endpoint
// returning the full deal set pre-grouped by raw stage code.
package crm

import (
	"context"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// Progress steps reported while a fetch is in flight.
const (
	StepConnecting = iota
	StepFetching
	StepClassifying
	StepFinalizing
)

// StepLabels are the display labels of the four progress steps.
var StepLabels = [4]string{
	"Conectando ao CRM",
	"Buscando negócios",
	"Classificando estágios",
	"Finalizando",
}

// ProgressFunc receives progress reports during a fetch. It may be invoked
// zero or more times; step indexes arrive in non-decreasing order but that is
// not enforced; consumers simply mirror the latest report.
type ProgressFunc func(step, percent int, label string)

// DealFetcher defines the contract for fetching the grouped deal set.
// This interface allows for easy mocking in tests and swapping data sources.
type DealFetcher interface {
	FetchGroupedDeals(ctx context.Context, progress ProgressFunc) (*model.GroupedDeals, error)
}
