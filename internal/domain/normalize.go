package domain

import "strings"

// Mapping translates one source workbook's column headers to canonical
// fields. Each yearly file ships its own mapping, so a new year's file
// needs a new mapping, not new parsing logic.
type Mapping struct {
	// Sheet names the worksheet to read. Empty means the first sheet.
	Sheet string

	// Source header names. ProvinceCode is optional; the rest of the
	// named fields plus the incidents/victims/affected counts are
	// required and their absence is a SchemaError.
	ProvinceCode string
	Province     string
	DisasterType string
	Counts       map[Metric]string
}

// requiredCounts are the count columns every mapping must resolve.
var requiredCounts = []Metric{MetricIncidents, MetricVictims, MetricAffected}

// Normalize maps a raw cell grid onto canonical rows. It scans for the
// header row (recap sheets carry title chrome above it), resolves every
// mapped column by case-insensitive header match, and emits one RawRow per
// data row below the header. Pure transform: no coercion, no filtering.
func Normalize(rows [][]string, m Mapping, year int) ([]RawRow, error) {
	headerIdx, cols := findHeaderRow(rows, m)
	if headerIdx < 0 {
		return nil, &SchemaError{Year: year, Missing: []string{"province"}}
	}

	provinceCol, okProvince := cols[canonHeader(m.Province)]
	typeCol, okType := cols[canonHeader(m.DisasterType)]

	var missing []string
	if !okProvince {
		missing = append(missing, "province")
	}
	if !okType {
		missing = append(missing, "disaster_type")
	}
	for _, metric := range requiredCounts {
		if _, ok := cols[canonHeader(m.Counts[metric])]; !ok {
			missing = append(missing, string(metric))
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Year: year, Missing: missing}
	}

	codeCol := -1
	if m.ProvinceCode != "" {
		if c, ok := cols[canonHeader(m.ProvinceCode)]; ok {
			codeCol = c
		}
	}

	// Optional count columns that are mapped but absent in this sheet are
	// skipped; the Cleaner zero-fills them.
	countCols := make(map[Metric]int, len(m.Counts))
	for metric, header := range m.Counts {
		if c, ok := cols[canonHeader(header)]; ok {
			countCols[metric] = c
		}
	}

	out := make([]RawRow, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		raw := RawRow{
			Province:     cell(row, provinceCol),
			DisasterType: cell(row, typeCol),
			Counts:       make(map[Metric]string, len(countCols)),
		}
		if codeCol >= 0 {
			raw.ProvinceCode = cell(row, codeCol)
		}
		for metric, col := range countCols {
			raw.Counts[metric] = cell(row, col)
		}
		out = append(out, raw)
	}
	return out, nil
}

// findHeaderRow returns the first row containing the mapped province
// header, plus a header-to-column index for that row. The province header
// is the probe because every recap section carries it; the remaining
// required columns are checked against the row it lands on.
func findHeaderRow(rows [][]string, m Mapping) (int, map[string]int) {
	probe := canonHeader(m.Province)
	for i, row := range rows {
		cols := indexHeaders(row)
		if _, ok := cols[probe]; ok {
			return i, cols
		}
	}
	return -1, nil
}

func indexHeaders(row []string) map[string]int {
	cols := make(map[string]int, len(row))
	for i, h := range row {
		key := canonHeader(h)
		if key == "" {
			continue
		}
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	return cols
}

func canonHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
