package domain

// Metric identifies a summable count column in the canonical schema.
type Metric string

const (
	MetricIncidents      Metric = "incidents"
	MetricVictims        Metric = "victims" // dead and missing (Meninggal & Hilang)
	MetricInjured        Metric = "injured"
	MetricAffected       Metric = "affected" // displaced and affected (Mengungsi & Terdampak)
	MetricHousesHeavy    Metric = "houses_heavy_damage"
	MetricHousesModerate Metric = "houses_moderate_damage"
	MetricHousesLight    Metric = "houses_light_damage"
	MetricHousesFlooded  Metric = "houses_flooded"
	MetricEduFacilities  Metric = "education_facilities"
	MetricWorship        Metric = "worship_facilities"
	MetricHealth         Metric = "health_facilities"

	// MetricImpactTotal is derived: incidents + victims + injured + affected
	// plus the three house-damage tiers. Not a source column.
	MetricImpactTotal Metric = "impact_total"
)

// Metrics lists every selectable metric in canonical order.
var Metrics = []Metric{
	MetricIncidents,
	MetricVictims,
	MetricInjured,
	MetricAffected,
	MetricHousesHeavy,
	MetricHousesModerate,
	MetricHousesLight,
	MetricHousesFlooded,
	MetricEduFacilities,
	MetricWorship,
	MetricHealth,
	MetricImpactTotal,
}

// RawRow is one spreadsheet row after header mapping, before cleaning.
// Cell values are still raw text; Counts holds one entry per mapped
// count column. Discarded after cleaning.
type RawRow struct {
	ProvinceCode string
	Province     string
	DisasterType string
	Counts       map[Metric]string
}

// DisasterRecord is one cleaned, year-tagged recap entry.
type DisasterRecord struct {
	ProvinceCode string `json:"province_code,omitempty"`
	Province     string `json:"province"`
	Year         int    `json:"year"`
	DisasterType string `json:"disaster_type"`

	Incidents      int `json:"incidents"`
	Victims        int `json:"victims"`
	Injured        int `json:"injured"`
	Affected       int `json:"affected"`
	HousesHeavy    int `json:"houses_heavy_damage"`
	HousesModerate int `json:"houses_moderate_damage"`
	HousesLight    int `json:"houses_light_damage"`
	HousesFlooded  int `json:"houses_flooded"`
	EduFacilities  int `json:"education_facilities"`
	Worship        int `json:"worship_facilities"`
	Health         int `json:"health_facilities"`
}

// MetricValue returns the record's value for the given metric,
// or 0 for an unknown metric.
func (r DisasterRecord) MetricValue(m Metric) int {
	switch m {
	case MetricIncidents:
		return r.Incidents
	case MetricVictims:
		return r.Victims
	case MetricInjured:
		return r.Injured
	case MetricAffected:
		return r.Affected
	case MetricHousesHeavy:
		return r.HousesHeavy
	case MetricHousesModerate:
		return r.HousesModerate
	case MetricHousesLight:
		return r.HousesLight
	case MetricHousesFlooded:
		return r.HousesFlooded
	case MetricEduFacilities:
		return r.EduFacilities
	case MetricWorship:
		return r.Worship
	case MetricHealth:
		return r.Health
	case MetricImpactTotal:
		return r.ImpactTotal()
	default:
		return 0
	}
}

// ImpactTotal is the convenience sum over the human and housing impact
// columns, matching the recap sheets' own "total impact" indicator.
func (r DisasterRecord) ImpactTotal() int {
	return r.Incidents + r.Victims + r.Injured + r.Affected +
		r.HousesHeavy + r.HousesModerate + r.HousesLight
}

// ParseMetric validates a metric name supplied by a caller.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", &UnknownMetricError{Name: s}
}
