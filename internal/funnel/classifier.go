// Package funnel implements the deal classification, grouping, faceted
// filtering and disclosure engine behind the normalized funnel view.
package funnel

import (
	"fmt"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// StageMapping maps a raw (pipeline-specific) stage code to its canonical
// category. Many-to-one: a raw code maps to exactly one category or to none.
// Codes absent from the mapping are excluded from every canonical group.
type StageMapping map[string]model.CanonicalCategory

// Classifier resolves raw stage codes against an immutable mapping table.
// The table is injected at construction so updated business-mapping data can
// be substituted without recompilation.
type Classifier struct {
	mapping StageMapping
}

// NewClassifier builds a classifier from the given mapping. The mapping is
// copied and validated; every entry must target a valid canonical category.
func NewClassifier(mapping StageMapping) (*Classifier, error) {
	copied := make(StageMapping, len(mapping))
	for code, cat := range mapping {
		if code == "" {
			return nil, fmt.Errorf("stage mapping contains an empty raw code")
		}
		if !cat.Valid() {
			return nil, fmt.Errorf("stage mapping for %q targets invalid category %d", code, cat)
		}
		copied[code] = cat
	}
	return &Classifier{mapping: copied}, nil
}

// Classify maps a raw stage code to its canonical category. ok is false for
// unknown codes; callers must treat that as "excluded from all categories",
// not as an error.
func (c *Classifier) Classify(rawStage string) (model.CanonicalCategory, bool) {
	cat, ok := c.mapping[rawStage]
	return cat, ok
}

// Codes returns every raw stage code known to the classifier. Used by the
// stages reference listing and by table-invariant tests.
func (c *Classifier) Codes() []string {
	codes := make([]string, 0, len(c.mapping))
	for code := range c.mapping {
		codes = append(codes, code)
	}
	return codes
}
