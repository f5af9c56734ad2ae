package domain

import "sort"

// Table is the canonical, immutable union of the yearly cleaned record
// sets. It is built wholesale per ingest and never patched; every
// summary recomputes from it.
type Table struct {
	records []DisasterRecord
}

// Merge concatenates cleaned per-year record slices into one Table.
// No cross-year deduplication: a province's 2023 and 2024 entries are
// distinct. The inputs are copied, so later mutation of the source
// slices cannot reach the table.
func Merge(batches ...[]DisasterRecord) *Table {
	total := 0
	for _, b := range batches {
		total += len(b)
	}
	records := make([]DisasterRecord, 0, total)
	for _, b := range batches {
		records = append(records, b...)
	}
	return &Table{records: records}
}

// Len reports the number of records in the table.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the table's records in merge order.
func (t *Table) Records() []DisasterRecord {
	out := make([]DisasterRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Provinces returns the distinct province names, sorted ascending.
func (t *Table) Provinces() []string {
	seen := make(map[string]struct{})
	for _, r := range t.records {
		seen[r.Province] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Years returns the distinct source years, sorted ascending.
func (t *Table) Years() []int {
	seen := make(map[int]struct{})
	for _, r := range t.records {
		seen[r.Year] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
