package funnel

// PipelineDescriptor carries the display identity of one source pipeline.
type PipelineDescriptor struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// PipelineTable maps a raw pipeline identifier or name to its descriptor.
type PipelineTable map[string]PipelineDescriptor

// Normalizer resolves raw pipeline values to display names and presentation
// descriptors. Like the classifier, it holds an immutable injected table.
type Normalizer struct {
	table PipelineTable
}

// NewNormalizer builds a normalizer from the given table.
func NewNormalizer(table PipelineTable) *Normalizer {
	copied := make(PipelineTable, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &Normalizer{table: copied}
}

// Normalize maps a raw pipeline value to its canonical display name.
// Empty input returns empty (no pipeline assigned, render no badge). Unknown
// input is returned unchanged: pipelines created after the table was last
// updated degrade to their raw name instead of disappearing.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	if d, ok := n.table[raw]; ok {
		return d.Name
	}
	return raw
}

// Descriptor returns the presentation descriptor for a raw pipeline value.
// Unknown values get a descriptor with only the name set, so callers can still
// render a plain badge.
func (n *Normalizer) Descriptor(raw string) (PipelineDescriptor, bool) {
	if raw == "" {
		return PipelineDescriptor{}, false
	}
	if d, ok := n.table[raw]; ok {
		return d, true
	}
	return PipelineDescriptor{Name: raw}, true
}

// Names returns the distinct display names in the table, for building the
// pipeline facet options.
func (n *Normalizer) Names() []string {
	seen := make(map[string]struct{}, len(n.table))
	names := make([]string, 0, len(n.table))
	for _, d := range n.table {
		if _, dup := seen[d.Name]; dup {
			continue
		}
		seen[d.Name] = struct{}{}
		names = append(names, d.Name)
	}
	return names
}
