package funnel

import "github.com/Gabriel-Jesus3761/zops-funnel/internal/model"

// DefaultWindow is the initial visible-window size of every category, and the
// increment added by each load-more action.
const DefaultWindow = 20

// sectionState is the per-category disclosure record.
type sectionState struct {
	expanded bool
	window   int
}

// Disclosure tracks expand/collapse and visible-window state for the eight
// canonical categories. State is a fixed-size array indexed by the category
// enum, so a typo can never create a phantom category. Each category is fully
// independent, and filtering never touches this state: windows and expand
// flags survive re-filtering and are scoped to one session.
type Disclosure struct {
	sections [model.NumCategories]sectionState
}

// NewDisclosure returns the session-initial state: every category collapsed
// with the default window.
func NewDisclosure() *Disclosure {
	d := &Disclosure{}
	for i := range d.sections {
		d.sections[i].window = DefaultWindow
	}
	return d
}

// Expanded reports whether the category is expanded.
func (d *Disclosure) Expanded(cat model.CanonicalCategory) bool {
	if !cat.Valid() {
		return false
	}
	return d.sections[cat].expanded
}

// Toggle flips a category's expanded flag.
func (d *Disclosure) Toggle(cat model.CanonicalCategory) {
	if !cat.Valid() {
		return
	}
	d.sections[cat].expanded = !d.sections[cat].expanded
}

// SetAllExpanded sets every category's expanded flag in one step.
func (d *Disclosure) SetAllExpanded(expanded bool) {
	for i := range d.sections {
		d.sections[i].expanded = expanded
	}
}

// AllExpanded reports whether every one of the eight categories is expanded
// AND present in the current filtered output. A category the filter dropped
// counts as not-expanded, so it blocks the all-expanded state even when its
// own flag is still set.
func (d *Disclosure) AllExpanded(present map[model.CanonicalCategory]int) bool {
	for _, cat := range model.Categories() {
		if !d.sections[cat].expanded {
			return false
		}
		if _, ok := present[cat]; !ok {
			return false
		}
	}
	return true
}

// Window returns the category's visible-window size.
func (d *Disclosure) Window(cat model.CanonicalCategory) int {
	if !cat.Valid() {
		return 0
	}
	return d.sections[cat].window
}

// LoadMore grows the category's window by the fixed increment. Windows never
// shrink; growing past the filtered group's length just shows everything.
func (d *Disclosure) LoadMore(cat model.CanonicalCategory) {
	if !cat.Valid() {
		return
	}
	d.sections[cat].window += DefaultWindow
}

// CanLoadMore reports whether the category still hides items beyond its
// window, given the filtered group's length.
func (d *Disclosure) CanLoadMore(cat model.CanonicalCategory, total int) bool {
	if !cat.Valid() {
		return false
	}
	return total > d.sections[cat].window
}

// Visible slices a filtered group down to the category's window.
func (d *Disclosure) Visible(cat model.CanonicalCategory, deals []model.Deal) []model.Deal {
	if !cat.Valid() {
		return nil
	}
	if w := d.sections[cat].window; len(deals) > w {
		return deals[:w]
	}
	return deals
}
