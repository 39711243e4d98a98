package funnel

import (
	"strings"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// FilterCriteria is the value object driving the faceted filter. Every facet
// is combined with every other by logical AND. An empty set or an empty /
// whitespace-only string means "no constraint" for that facet, never "match
// empty".
type FilterCriteria struct {
	// Search is the free-text query matched against the deal name.
	Search string

	// Pipelines holds normalized pipeline display names. Empty = no constraint.
	Pipelines []string

	// Categories constrains the deal's own canonical category, re-derived from
	// its raw stage. Empty = no constraint.
	Categories []model.CanonicalCategory

	// Per-field substring filters, each independent and case-insensitive.
	Name       string
	DisplayID  string
	Company    string
	CNPJ       string
	PostalCode string
	City       string
	State      string
	Street     string
	PlaceID    string

	// Inclusive creation-date range. From is taken at 00:00:00 local and To at
	// 23:59:59.999 local of the respective day.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// IsZero reports whether no facet is active.
func (fc FilterCriteria) IsZero() bool {
	return !fc.hasSearch() && len(fc.Pipelines) == 0 && len(fc.Categories) == 0 &&
		!fc.hasFieldFilters() && !fc.hasDateRange()
}

func (fc FilterCriteria) hasSearch() bool {
	return strings.TrimSpace(fc.Search) != ""
}

func (fc FilterCriteria) hasFieldFilters() bool {
	for _, f := range fc.fieldFilters() {
		if strings.TrimSpace(f.query) != "" {
			return true
		}
	}
	return false
}

func (fc FilterCriteria) hasDateRange() bool {
	return fc.CreatedFrom != nil || fc.CreatedTo != nil
}

type fieldFilter struct {
	query string
	value func(model.Deal) string
}

func (fc FilterCriteria) fieldFilters() []fieldFilter {
	return []fieldFilter{
		{fc.Name, func(d model.Deal) string { return d.Name }},
		{fc.DisplayID, func(d model.Deal) string { return d.DisplayID }},
		{fc.Company, func(d model.Deal) string { return d.Company }},
		{fc.CNPJ, func(d model.Deal) string { return d.CNPJ }},
		{fc.PostalCode, func(d model.Deal) string { return d.PostalCode }},
		{fc.City, func(d model.Deal) string { return d.City }},
		{fc.State, func(d model.Deal) string { return d.State }},
		{fc.Street, func(d model.Deal) string { return d.Street }},
		{fc.PlaceID, func(d model.Deal) string { return d.PlaceID }},
	}
}

// Engine applies a FilterCriteria over canonical deal groups. It is a pure
// function of its inputs: there is no hidden state and filtering twice with
// the same criteria yields identical output.
type Engine struct {
	classifier *Classifier
	normalizer *Normalizer
}

// NewEngine wires the filter engine to its classifier and normalizer.
func NewEngine(classifier *Classifier, normalizer *Normalizer) *Engine {
	return &Engine{classifier: classifier, normalizer: normalizer}
}

// Filter returns the groups that survive every active facet, plus per-category
// counts. Categories left empty after filtering are dropped from the output
// map entirely (they decide which funnel stages render at all), and counts are
// derived from the filtered groups so count and visible list always agree.
func (e *Engine) Filter(groups map[model.CanonicalCategory][]model.Deal, criteria FilterCriteria) (map[model.CanonicalCategory][]model.Deal, map[model.CanonicalCategory]int) {
	filtered := make(map[model.CanonicalCategory][]model.Deal)
	counts := make(map[model.CanonicalCategory]int)

	for _, cat := range model.Categories() {
		deals, ok := groups[cat]
		if !ok {
			continue
		}
		var keep []model.Deal
		for _, d := range deals {
			if e.matches(d, criteria) {
				keep = append(keep, d)
			}
		}
		if len(keep) == 0 {
			continue
		}
		filtered[cat] = keep
		counts[cat] = len(keep)
	}
	return filtered, counts
}

// matches reports whether a deal satisfies the conjunction of all active
// facets. Total over its input: nothing here can fail.
func (e *Engine) matches(d model.Deal, fc FilterCriteria) bool {
	if q := strings.TrimSpace(fc.Search); q != "" && !containsFold(d.Name, q) {
		return false
	}

	if len(fc.Pipelines) > 0 {
		name := e.normalizer.Normalize(d.Pipeline)
		if !containsString(fc.Pipelines, name) {
			return false
		}
	}

	if len(fc.Categories) > 0 {
		cat, ok := e.classifier.Classify(d.RawStage)
		if !ok || !containsCategory(fc.Categories, cat) {
			return false
		}
	}

	for _, f := range fc.fieldFilters() {
		q := strings.TrimSpace(f.query)
		if q == "" {
			continue
		}
		if !containsFold(f.value(d), q) {
			return false
		}
	}

	if fc.hasDateRange() {
		created, ok := d.CreatedTime()
		if !ok {
			// Missing or unparseable date fails closed whenever a bound is set.
			return false
		}
		if fc.CreatedFrom != nil && created.Before(startOfDay(*fc.CreatedFrom)) {
			return false
		}
		if fc.CreatedTo != nil && created.After(endOfDay(*fc.CreatedTo)) {
			return false
		}
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsCategory(set []model.CanonicalCategory, v model.CanonicalCategory) bool {
	for _, c := range set {
		if c == v {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.Local)
}
