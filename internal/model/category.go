// Package model defines the core domain models used throughout the application.
package model

// CanonicalCategory is one of the eight business-defined funnel stages used to
// present a unified view across all source pipelines. Raw CRM stage codes are
// pipeline-specific and only become comparable after classification.
type CanonicalCategory int

// Canonical funnel categories, in display order.
const (
	CategoryLeads CanonicalCategory = iota
	CategoryConnect
	CategoryDiscovery
	CategoryProposal
	CategoryNegotiation
	CategoryCommit
	CategoryWon
	CategoryLost

	// NumCategories is the number of canonical categories. Per-category state
	// records (disclosure, counts) are sized with it.
	NumCategories = 8
)

var categoryNames = [NumCategories]string{
	"leads",
	"connect",
	"discovery",
	"proposal",
	"negotiation",
	"commit",
	"won",
	"lost",
}

var categoryLabels = [NumCategories]string{
	"Leads",
	"Conexão",
	"Descoberta",
	"Proposta",
	"Negociação",
	"Fechamento",
	"Ganho",
	"Perdido",
}

// Categories returns all canonical categories in display order.
func Categories() [NumCategories]CanonicalCategory {
	return [NumCategories]CanonicalCategory{
		CategoryLeads,
		CategoryConnect,
		CategoryDiscovery,
		CategoryProposal,
		CategoryNegotiation,
		CategoryCommit,
		CategoryWon,
		CategoryLost,
	}
}

// Valid reports whether c is one of the eight canonical categories.
func (c CanonicalCategory) Valid() bool {
	return c >= CategoryLeads && c <= CategoryLost
}

// String returns the stable machine name of the category.
func (c CanonicalCategory) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Label returns the human-facing display label of the category.
func (c CanonicalCategory) Label() string {
	if !c.Valid() {
		return "?"
	}
	return categoryLabels[c]
}

// ParseCategory resolves a machine name back to its category.
func ParseCategory(name string) (CanonicalCategory, bool) {
	for i, n := range categoryNames {
		if n == name {
			return CanonicalCategory(i), true
		}
	}
	return 0, false
}
