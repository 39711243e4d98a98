package sheets

import "time"

// DealRow is one exported deal line.
type DealRow struct {
	Category  string
	Pipeline  string
	DisplayID string
	Name      string
	Company   string
	CNPJ      string
	City      string
	State     string
	CreatedAt string
}

// CategorySummaryRow aggregates one canonical category.
type CategorySummaryRow struct {
	Category string
	Count    int
}

// FunnelReport holds everything the export writes: the per-category summary
// in funnel order followed by the filtered deal rows.
type FunnelReport struct {
	GeneratedAt time.Time
	Summary     []CategorySummaryRow
	Deals       []DealRow
	Filtered    bool
	Total       int
}
