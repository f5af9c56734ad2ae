package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CoercionPolicy selects how malformed or negative numeric cells are handled.
type CoercionPolicy string

const (
	// PolicyClamp zero-fills unparseable cells and clamps negatives,
	// counting both in the clean report. The default.
	PolicyClamp CoercionPolicy = "clamp"

	// PolicyReject drops the whole row when any count cell is
	// unparseable or negative.
	PolicyReject CoercionPolicy = "reject"
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (CoercionPolicy, error) {
	switch CoercionPolicy(s) {
	case PolicyClamp, PolicyReject:
		return CoercionPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown coercion policy %q", s)
	}
}

// CleanReport accumulates per-row data quality counts for one year's
// ingestion. Row problems never abort a run; they land here instead.
type CleanReport struct {
	Year              int       `json:"year"`
	RowsRead          int       `json:"rows_read"`
	RowsKept          int       `json:"rows_kept"`
	EmptyProvince     int       `json:"skipped_empty_province"`
	PlaceholderCode   int       `json:"skipped_placeholder_code"`
	RejectedRows      int       `json:"rejected_rows"`
	ZeroFilledCells   int       `json:"zero_filled_cells"`
	ClampedCells      int       `json:"clamped_cells"`
	DuplicatesDropped int       `json:"duplicates_dropped"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// Clean validates normalized rows into year-tagged DisasterRecords.
// Rows with an empty province or a placeholder province code are dropped
// and counted; count cells are coerced per the policy; exact duplicates
// keep their first occurrence. Input order is preserved.
func Clean(rows []RawRow, year int, policy CoercionPolicy) ([]DisasterRecord, CleanReport) {
	report := CleanReport{Year: year, RowsRead: len(rows)}
	titler := cases.Title(language.Indonesian)

	records := make([]DisasterRecord, 0, len(rows))
	seen := make(map[DisasterRecord]struct{}, len(rows))

	for _, raw := range rows {
		province := strings.TrimSpace(raw.Province)
		if province == "" {
			report.EmptyProvince++
			continue
		}
		code := strings.TrimSpace(raw.ProvinceCode)
		if strings.HasPrefix(code, "-") {
			report.PlaceholderCode++
			continue
		}

		rec := DisasterRecord{
			ProvinceCode: normalizeCode(code),
			Province:     titler.String(province),
			Year:         year,
			DisasterType: strings.TrimSpace(raw.DisasterType),
		}

		rejected := false
		for _, metric := range Metrics {
			if metric == MetricImpactTotal {
				continue
			}
			value, flag := coerceCount(raw.Counts[metric])
			if flag != coerceOK && policy == PolicyReject {
				rejected = true
				break
			}
			switch flag {
			case coerceZeroFilled:
				report.ZeroFilledCells++
			case coerceClamped:
				report.ClampedCells++
			}
			setMetric(&rec, metric, value)
		}
		if rejected {
			report.RejectedRows++
			continue
		}

		if _, dup := seen[rec]; dup {
			report.DuplicatesDropped++
			continue
		}
		seen[rec] = struct{}{}
		records = append(records, rec)
		report.RowsKept++
	}

	report.GeneratedAt = clock.Now()
	return records, report
}

type coerceFlag int

const (
	coerceOK coerceFlag = iota
	coerceZeroFilled
	coerceClamped
)

// dashPlaceholders are the BNPB "no data" markers, read as a clean zero.
var dashPlaceholders = map[string]struct{}{
	"": {}, "-": {}, "—": {}, "–": {},
}

// maxCount bounds a plausible recap cell. No per-province count comes
// near it; values beyond are garbage, not data.
const maxCount = math.MaxInt32

// coerceCount turns a raw cell into a non-negative integer. Dashes and
// blanks are zero; thousands separators are stripped; floats truncate;
// negatives clamp to zero; anything else zero-fills. NaN, infinities,
// and values past maxCount parse as floats but are garbage too — they
// must zero-fill before the int conversion can wrap them negative.
func coerceCount(s string) (int, coerceFlag) {
	s = strings.TrimSpace(s)
	if _, ok := dashPlaceholders[s]; ok {
		return 0, coerceOK
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, coerceZeroFilled
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v > maxCount {
		return 0, coerceZeroFilled
	}
	if v < 0 {
		return 0, coerceClamped
	}
	return int(v), coerceOK
}

// normalizeCode renders numeric-looking province codes as bare integer
// strings ("11.0" → "11"); non-numeric codes pass through trimmed.
func normalizeCode(code string) string {
	if code == "" {
		return ""
	}
	v, err := strconv.ParseFloat(code, 64)
	if err != nil || v != float64(int64(v)) {
		return code
	}
	return strconv.FormatInt(int64(v), 10)
}

func setMetric(r *DisasterRecord, m Metric, v int) {
	switch m {
	case MetricIncidents:
		r.Incidents = v
	case MetricVictims:
		r.Victims = v
	case MetricInjured:
		r.Injured = v
	case MetricAffected:
		r.Affected = v
	case MetricHousesHeavy:
		r.HousesHeavy = v
	case MetricHousesModerate:
		r.HousesModerate = v
	case MetricHousesLight:
		r.HousesLight = v
	case MetricHousesFlooded:
		r.HousesFlooded = v
	case MetricEduFacilities:
		r.EduFacilities = v
	case MetricWorship:
		r.Worship = v
	case MetricHealth:
		r.Health = v
	}
}
