package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRow(code, province, disasterType string, counts map[Metric]string) RawRow {
	if counts == nil {
		counts = map[Metric]string{}
	}
	return RawRow{ProvinceCode: code, Province: province, DisasterType: disasterType, Counts: counts}
}

func TestClean(t *testing.T) {
	frozen := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	t.Run("title-cases and trims province names", func(t *testing.T) {
		rows := []RawRow{
			rawRow("11", "  ACEH ", "Banjir", map[Metric]string{MetricIncidents: "3"}),
			rawRow("31", "dki jakarta", "Banjir", map[Metric]string{MetricIncidents: "7"}),
		}

		records, report := Clean(rows, 2023, PolicyClamp)

		require.Len(t, records, 2)
		assert.Equal(t, "Aceh", records[0].Province)
		assert.Equal(t, "Dki Jakarta", records[1].Province)
		assert.Equal(t, 2, report.RowsKept)
		assert.Equal(t, frozen, report.GeneratedAt)
	})

	t.Run("tags every record with the source year", func(t *testing.T) {
		rows := []RawRow{rawRow("11", "Aceh", "Banjir", nil)}

		records, _ := Clean(rows, 2024, PolicyClamp)

		require.Len(t, records, 1)
		assert.Equal(t, 2024, records[0].Year)
	})

	t.Run("drops empty-province rows and counts them", func(t *testing.T) {
		rows := []RawRow{
			rawRow("", "   ", "", nil),
			rawRow("11", "Aceh", "Banjir", nil),
		}

		records, report := Clean(rows, 2023, PolicyClamp)

		assert.Len(t, records, 1)
		assert.Equal(t, 1, report.EmptyProvince)
		assert.Equal(t, 2, report.RowsRead)
	})

	t.Run("drops placeholder province codes", func(t *testing.T) {
		rows := []RawRow{
			rawRow("-1", "Jumlah", "", nil),
			rawRow("-2", "Total", "", nil),
			rawRow("11", "Aceh", "Banjir", nil),
		}

		records, report := Clean(rows, 2023, PolicyClamp)

		assert.Len(t, records, 1)
		assert.Equal(t, 2, report.PlaceholderCode)
	})

	t.Run("normalizes numeric province codes", func(t *testing.T) {
		rows := []RawRow{rawRow("11.0", "Aceh", "Banjir", nil)}

		records, _ := Clean(rows, 2023, PolicyClamp)

		require.Len(t, records, 1)
		assert.Equal(t, "11", records[0].ProvinceCode)
	})

	t.Run("deduplicates exact duplicates keeping the first", func(t *testing.T) {
		row := rawRow("11", "Aceh", "Banjir", map[Metric]string{MetricIncidents: "3", MetricVictims: "1"})
		rows := []RawRow{row, row, rawRow("11", "Aceh", "Banjir", map[Metric]string{MetricIncidents: "4"})}

		records, report := Clean(rows, 2023, PolicyClamp)

		assert.Len(t, records, 2)
		assert.Equal(t, 1, report.DuplicatesDropped)
	})

	t.Run("clamp policy zero-fills and clamps with counts", func(t *testing.T) {
		rows := []RawRow{
			rawRow("11", "Aceh", "Banjir", map[Metric]string{
				MetricIncidents: "n/a",
				MetricVictims:   "-5",
				MetricAffected:  "1,204",
				MetricInjured:   "3.9",
			}),
		}

		records, report := Clean(rows, 2023, PolicyClamp)

		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].Incidents)
		assert.Equal(t, 0, records[0].Victims)
		assert.Equal(t, 1204, records[0].Affected)
		assert.Equal(t, 3, records[0].Injured)
		assert.Equal(t, 1, report.ZeroFilledCells)
		assert.Equal(t, 1, report.ClampedCells)
		assert.Equal(t, 0, report.RejectedRows)
	})

	t.Run("reject policy drops the whole row", func(t *testing.T) {
		rows := []RawRow{
			rawRow("11", "Aceh", "Banjir", map[Metric]string{MetricIncidents: "n/a"}),
			rawRow("51", "Bali", "Banjir", map[Metric]string{MetricIncidents: "2"}),
		}

		records, report := Clean(rows, 2023, PolicyReject)

		require.Len(t, records, 1)
		assert.Equal(t, "Bali", records[0].Province)
		assert.Equal(t, 1, report.RejectedRows)
		assert.Equal(t, 0, report.ZeroFilledCells)
	})

	t.Run("non-finite and overflowing cells zero-fill instead of wrapping", func(t *testing.T) {
		rows := []RawRow{
			rawRow("11", "Aceh", "Banjir", map[Metric]string{
				MetricIncidents: "NaN",
				MetricVictims:   "inf",
				MetricAffected:  "1e30",
			}),
		}

		records, report := Clean(rows, 2023, PolicyClamp)

		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].Incidents)
		assert.Equal(t, 0, records[0].Victims)
		assert.Equal(t, 0, records[0].Affected)
		assert.Equal(t, 3, report.ZeroFilledCells)

		_, rejectReport := Clean(rows, 2023, PolicyReject)
		assert.Equal(t, 1, rejectReport.RejectedRows)
	})

	t.Run("all counts non-negative after cleaning", func(t *testing.T) {
		rows := []RawRow{
			rawRow("11", "Aceh", "Banjir", map[Metric]string{
				MetricIncidents: "-3", MetricVictims: "garbage", MetricAffected: "—",
				MetricHousesHeavy: "-1", MetricHousesFlooded: "12",
			}),
		}

		records, _ := Clean(rows, 2023, PolicyClamp)

		require.Len(t, records, 1)
		for _, m := range Metrics {
			assert.GreaterOrEqual(t, records[0].MetricValue(m), 0, "metric %s", m)
		}
	})

	t.Run("idempotent over the same input", func(t *testing.T) {
		rows := []RawRow{
			rawRow("11", "ACEH", "Banjir", map[Metric]string{MetricIncidents: "3", MetricVictims: "-"}),
			rawRow("51", "bali", "Gempa Bumi", map[Metric]string{MetricIncidents: "2"}),
		}

		first, _ := Clean(rows, 2023, PolicyClamp)
		second, _ := Clean(rows, 2023, PolicyClamp)

		assert.Equal(t, first, second)
	})
}

func TestCoerceCount(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		value int
		flag  coerceFlag
	}{
		{"plain integer", "42", 42, coerceOK},
		{"blank", "", 0, coerceOK},
		{"ascii dash", "-", 0, coerceOK},
		{"em dash", "—", 0, coerceOK},
		{"en dash", "–", 0, coerceOK},
		{"thousands separator", "12,504", 12504, coerceOK},
		{"float truncates", "7.8", 7, coerceOK},
		{"negative clamps", "-4", 0, coerceClamped},
		{"text zero-fills", "tidak ada", 0, coerceZeroFilled},
		{"whitespace padded", "  15 ", 15, coerceOK},
		{"NaN zero-fills", "NaN", 0, coerceZeroFilled},
		{"positive infinity zero-fills", "inf", 0, coerceZeroFilled},
		{"negative infinity zero-fills", "-inf", 0, coerceZeroFilled},
		{"beyond any plausible count zero-fills", "1e30", 0, coerceZeroFilled},
		{"just past the bound zero-fills", "2147483648", 0, coerceZeroFilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, flag := coerceCount(tt.in)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.flag, flag)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("clamp")
	require.NoError(t, err)
	assert.Equal(t, PolicyClamp, p)

	p, err = ParsePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, PolicyReject, p)

	_, err = ParsePolicy("ignore")
	require.Error(t, err)
}
