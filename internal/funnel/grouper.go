package funnel

import (
	"sort"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// Group partitions deals, already bucketed by raw stage as delivered by the
// fetch, into canonical categories. Each raw stage's deal list is appended
// whole, preserving its input order; raw stage keys are visited in sorted
// order so cross-stage concatenation order is deterministic and grouping is
// idempotent. Deals whose raw stage is unmapped contribute nothing; the
// silent drop is documented behavior, not an error.
func (c *Classifier) Group(byRawStage map[string][]model.Deal) map[model.CanonicalCategory][]model.Deal {
	stages := make([]string, 0, len(byRawStage))
	for stage := range byRawStage {
		stages = append(stages, stage)
	}
	sort.Strings(stages)

	grouped := make(map[model.CanonicalCategory][]model.Deal)
	for _, stage := range stages {
		deals := byRawStage[stage]
		if len(deals) == 0 {
			continue
		}
		cat, ok := c.Classify(stage)
		if !ok {
			continue
		}
		grouped[cat] = append(grouped[cat], deals...)
	}
	return grouped
}
