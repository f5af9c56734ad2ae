// Command validate re-runs the ingest pipeline over the two recap
// workbooks offline and checks the dataset's integrity properties:
// idempotent cleaning, non-negative counts, KPI consistency, Top-N
// ordering, and year-comparison completeness.
//
// Usage:
//
//	go run ./cmd/validate -data-2023 data/Data_2023.xlsx -data-2024 data/Data_2024.xlsx
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/couchcryptid/bencana-dashboard/internal/adapter/excel"
	"github.com/couchcryptid/bencana-dashboard/internal/domain"
	"github.com/couchcryptid/bencana-dashboard/internal/observability"
	"github.com/couchcryptid/bencana-dashboard/internal/pipeline"
	"github.com/couchcryptid/bencana-dashboard/internal/testutil"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	data2023 := flag.String("data-2023", "data/Data_2023.xlsx", "path to the 2023 recap workbook")
	data2024 := flag.String("data-2024", "data/Data_2024.xlsx", "path to the 2024 recap workbook")
	policy := flag.String("policy", "clamp", "coercion policy: clamp or reject")
	flag.Parse()

	if code := run(*data2023, *data2024, *policy); code != 0 {
		os.Exit(code)
	}
}

func run(path2023, path2024, policyName string) int {
	policy, err := domain.ParsePolicy(policyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	m23, _ := pipeline.MappingForYear(2023)
	m24, _ := pipeline.MappingForYear(2024)
	sources := []pipeline.Source{
		{Year: 2023, Path: path2023, Mapping: m23},
		{Year: 2024, Path: path2024, Mapping: m24},
	}

	reader := excel.NewReader(testutil.DiscardLogger())
	in := pipeline.New(reader, sources, policy, testutil.DiscardLogger(), observability.NewMetricsForTesting())

	fmt.Println("=== Disaster Recap Integrity Validation ===")
	fmt.Println()

	batches := make([][]domain.DisasterRecord, 0, len(sources))
	for _, src := range sources {
		records, report, err := in.LoadAndClean(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load %d workbook: %v\n", src.Year, err)
			return 1
		}
		fmt.Printf("  year %d: %d rows read, %d kept, %d zero-filled cells, %d clamped, %d duplicates\n",
			src.Year, report.RowsRead, report.RowsKept,
			report.ZeroFilledCells, report.ClampedCells, report.DuplicatesDropped)
		batches = append(batches, records)
	}
	table := domain.Merge(batches...)

	phases := []*phase{
		validateIdempotence(in, sources, batches),
		validateNonNegativity(table),
		validateKPIConsistency(table),
		validateTopNOrdering(table),
		validateComparisonCompleteness(table),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-38s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	fmt.Println()
	if allPassed {
		fmt.Printf("All validations passed over %d records.\n", table.Len())
		return 0
	}
	fmt.Println("Validation FAILED.")
	return 1
}

// validateIdempotence re-runs LoadAndClean and demands identical output.
func validateIdempotence(in *pipeline.Ingestor, sources []pipeline.Source, first [][]domain.DisasterRecord) *phase {
	p := &phase{name: "idempotent cleaning"}
	for i, src := range sources {
		again, _, err := in.LoadAndClean(src)
		if err != nil {
			p.errorf("year %d: second run failed: %v", src.Year, err)
			continue
		}
		if len(again) != len(first[i]) {
			p.errorf("year %d: %d records on first run, %d on second", src.Year, len(first[i]), len(again))
			continue
		}
		for j := range again {
			if again[j] != first[i][j] {
				p.errorf("year %d: record %d differs between runs", src.Year, j)
				break
			}
		}
	}
	return p
}

func validateNonNegativity(table *domain.Table) *phase {
	p := &phase{name: "non-negative counts"}
	for i, r := range table.Records() {
		for _, m := range domain.Metrics {
			if r.MetricValue(m) < 0 {
				p.errorf("record %d (%s %d): metric %s is negative", i, r.Province, r.Year, m)
			}
		}
	}
	return p
}

func validateKPIConsistency(table *domain.Table) *phase {
	p := &phase{name: "KPI consistency"}
	view := domain.Summarize(table, domain.Filter{}, domain.MetricIncidents, domain.DefaultTopN)

	incidents, victims, affected := 0, 0, 0
	provinces := map[string]struct{}{}
	for _, r := range table.Records() {
		incidents += r.Incidents
		victims += r.Victims
		affected += r.Affected
		provinces[r.Province] = struct{}{}
	}

	if view.KPI.TotalIncidents != incidents {
		p.errorf("total_incidents %d, recount %d", view.KPI.TotalIncidents, incidents)
	}
	if view.KPI.TotalVictims != victims {
		p.errorf("total_victims %d, recount %d", view.KPI.TotalVictims, victims)
	}
	if view.KPI.TotalAffected != affected {
		p.errorf("total_affected %d, recount %d", view.KPI.TotalAffected, affected)
	}
	if view.KPI.ProvinceCount != len(provinces) {
		p.errorf("province_count %d, recount %d", view.KPI.ProvinceCount, len(provinces))
	}
	return p
}

func validateTopNOrdering(table *domain.Table) *phase {
	p := &phase{name: "Top-N ordering"}
	for _, m := range domain.Metrics {
		view := domain.Summarize(table, domain.Filter{}, m, len(table.Provinces()))
		for i := 1; i < len(view.TopProvinces); i++ {
			prev, cur := view.TopProvinces[i-1], view.TopProvinces[i]
			if cur.Value > prev.Value {
				p.errorf("metric %s: %s (%d) ranked below %s (%d)", m, prev.Province, prev.Value, cur.Province, cur.Value)
			}
			if cur.Value == prev.Value && cur.Province < prev.Province {
				p.errorf("metric %s: tie between %s and %s not in name order", m, prev.Province, cur.Province)
			}
		}
	}
	return p
}

func validateComparisonCompleteness(table *domain.Table) *phase {
	p := &phase{name: "year-comparison completeness"}
	view := domain.Summarize(table, domain.Filter{}, domain.MetricIncidents, domain.DefaultTopN)
	if view.Comparison == nil {
		p.errorf("no comparison produced for a multi-year table")
		return p
	}

	want := table.Provinces()
	got := make([]string, 0, len(view.Comparison.Rows))
	for _, row := range view.Comparison.Rows {
		got = append(got, row.Province)
		if len(row.Values) != len(view.Comparison.Years) {
			p.errorf("%s: %d values for %d years", row.Province, len(row.Values), len(view.Comparison.Years))
		}
	}
	if !sort.StringsAreSorted(got) {
		p.errorf("comparison rows not sorted by province")
	}
	if len(got) != len(want) {
		p.errorf("%d comparison rows, %d provinces in table", len(got), len(want))
	}
	return p
}
