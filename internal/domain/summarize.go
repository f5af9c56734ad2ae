package domain

import (
	"sort"
	"strings"
	"time"
)

// DefaultTopN is the ranking size when the caller does not supply one.
const DefaultTopN = 10

// Filter scopes a summary to selected years and provinces. Empty slices
// mean "all". Province names match case-insensitively so callers are not
// required to reproduce the cleaner's casing.
type Filter struct {
	Years     []int
	Provinces []string
}

func (f Filter) matches(r DisasterRecord) bool {
	if len(f.Years) > 0 {
		found := false
		for _, y := range f.Years {
			if r.Year == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Provinces) > 0 {
		found := false
		for _, p := range f.Provinces {
			if strings.EqualFold(strings.TrimSpace(p), r.Province) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter returns the records matching the filter, in table order.
func (t *Table) Filter(f Filter) []DisasterRecord {
	out := make([]DisasterRecord, 0, len(t.records))
	for _, r := range t.records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// KPI is the headline tuple over the filtered set. An empty filtered set
// yields all zeros; that is a valid summary, not an error.
type KPI struct {
	ProvinceCount  int `json:"province_count"`
	TotalIncidents int `json:"total_incidents"`
	TotalVictims   int `json:"total_victims"`
	TotalAffected  int `json:"total_affected"`
}

// ProvinceMetric is one ranking entry: a province and its summed metric.
type ProvinceMetric struct {
	Province string `json:"province"`
	Value    int    `json:"value"`
}

// ComparisonRow holds one province's per-year metric sums, parallel to
// YearComparison.Years. A year with no records for the province is an
// explicit zero, not an omission.
type ComparisonRow struct {
	Province string `json:"province"`
	Values   []int  `json:"values"`
}

// YearComparison pairs per-province metric sums across the years in scope.
type YearComparison struct {
	Years []int           `json:"years"`
	Rows  []ComparisonRow `json:"rows"`
}

// SummaryView is the derived view the dashboard renders. Purely a function
// of (table, filter, metric, topN); recomputed per call, never cached.
type SummaryView struct {
	Metric       Metric           `json:"metric"`
	KPI          KPI              `json:"kpi"`
	TopProvinces []ProvinceMetric `json:"top_provinces"`
	Comparison   *YearComparison  `json:"year_comparison,omitempty"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

// Summarize computes KPIs, the Top-N ranking by the given metric, and the
// cross-year comparison over the filtered record set. topN values below 1
// fall back to DefaultTopN. Never fails: empty results are valid.
func Summarize(t *Table, f Filter, metric Metric, topN int) SummaryView {
	if topN < 1 {
		topN = DefaultTopN
	}

	filtered := t.Filter(f)

	view := SummaryView{
		Metric:       metric,
		KPI:          computeKPI(filtered),
		TopProvinces: topProvinces(filtered, metric, topN),
		GeneratedAt:  clock.Now(),
	}

	scope := scopeYears(t, f)
	if len(scope) >= 2 {
		view.Comparison = compareYears(filtered, metric, scope)
	}
	return view
}

func computeKPI(records []DisasterRecord) KPI {
	kpi := KPI{}
	provinces := make(map[string]struct{})
	for _, r := range records {
		provinces[r.Province] = struct{}{}
		kpi.TotalIncidents += r.Incidents
		kpi.TotalVictims += r.Victims
		kpi.TotalAffected += r.Affected
	}
	kpi.ProvinceCount = len(provinces)
	return kpi
}

// topProvinces sums the metric per province over the flat filtered set
// (years are summed together, not compared) and ranks descending. Ties
// break by province name ascending so the ordering is stable across
// sheet re-reads.
func topProvinces(records []DisasterRecord, metric Metric, n int) []ProvinceMetric {
	sums := make(map[string]int)
	for _, r := range records {
		sums[r.Province] += r.MetricValue(metric)
	}

	ranked := make([]ProvinceMetric, 0, len(sums))
	for province, value := range sums {
		ranked = append(ranked, ProvinceMetric{Province: province, Value: value})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Province < ranked[j].Province
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// compareYears builds the per-province year comparison. Every province in
// the filtered set appears exactly once, zero-filled for years it has no
// records in. Rows sort by province name ascending.
func compareYears(records []DisasterRecord, metric Metric, years []int) *YearComparison {
	yearIdx := make(map[int]int, len(years))
	for i, y := range years {
		yearIdx[y] = i
	}

	byProvince := make(map[string][]int)
	for _, r := range records {
		idx, ok := yearIdx[r.Year]
		if !ok {
			continue
		}
		values, ok := byProvince[r.Province]
		if !ok {
			values = make([]int, len(years))
			byProvince[r.Province] = values
		}
		values[idx] += r.MetricValue(metric)
	}

	rows := make([]ComparisonRow, 0, len(byProvince))
	for province, values := range byProvince {
		rows = append(rows, ComparisonRow{Province: province, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Province < rows[j].Province })

	return &YearComparison{Years: years, Rows: rows}
}

// scopeYears resolves the filter's year scope: the filter's years when
// given, otherwise every year present in the table. Sorted ascending,
// deduplicated.
func scopeYears(t *Table, f Filter) []int {
	if len(f.Years) == 0 {
		return t.Years()
	}
	seen := make(map[int]struct{}, len(f.Years))
	out := make([]int, 0, len(f.Years))
	for _, y := range f.Years {
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}
