package info

// Report is the consolidated gather output: one fixed top-level key per
// category plus the "changed" flag. Every key is always present; categories
// the caller did not request hold their empty default so the output shape is
// stable regardless of selection.
type Report map[string]any

// newReport builds a report populated with every category's default. The
// dispatcher overwrites only the requested categories, which replaces the
// original pattern of one pre-declared mutable variable per category.
func newReport() Report {
	report := make(Report, len(registry)+1)
	for i := range registry {
		report[registry[i].resultKey] = registry[i].defaultValue()
	}
	// Strictly read/list operations, so a gather never changes the cluster.
	report["changed"] = false
	return report
}

// set records one category's canonical value under its fixed result key.
func (r Report) set(category Category, value any) {
	if d := lookup(category); d != nil {
		r[d.resultKey] = value
	}
}
