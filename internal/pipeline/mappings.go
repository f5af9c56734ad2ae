package pipeline

import "github.com/couchcryptid/bencana-dashboard/internal/domain"

// The yearly recap exports do not share a header vocabulary: the 2023
// file uses spaced headers with ampersands, the 2024 file underscored
// variants. Supporting a new year means adding a mapping here, not
// touching the parser.
var mappings = map[int]domain.Mapping{
	2023: {
		ProvinceCode: "Kode Wilayah Provinsi",
		Province:     "Provinsi",
		DisasterType: "Jenis Bencana",
		Counts: map[domain.Metric]string{
			domain.MetricIncidents:      "Jumlah Kejadian",
			domain.MetricVictims:        "Meninggal & Hilang",
			domain.MetricInjured:        "Luka-Luka",
			domain.MetricAffected:       "Mengungsi & Terdampak",
			domain.MetricHousesHeavy:    "Rumah Rusak Berat",
			domain.MetricHousesModerate: "Rumah Rusak Sedang",
			domain.MetricHousesLight:    "Rumah Rusak Ringan",
			domain.MetricHousesFlooded:  "Rumah Terendam",
			domain.MetricEduFacilities:  "Fasilitas Pendidikan",
			domain.MetricWorship:        "Fasilitas Peribadatan",
			domain.MetricHealth:         "Fasilitas Kesehatan",
		},
	},
	2024: {
		ProvinceCode: "Kode_Provinsi",
		Province:     "Provinsi",
		DisasterType: "Jenis_Bencana",
		Counts: map[domain.Metric]string{
			domain.MetricIncidents:      "Jumlah_Kejadian",
			domain.MetricVictims:        "Meninggal_Hilang",
			domain.MetricInjured:        "Luka_Luka",
			domain.MetricAffected:       "Mengungsi_Terdampak",
			domain.MetricHousesHeavy:    "Rumah_Rusak_Berat",
			domain.MetricHousesModerate: "Rumah_Rusak_Sedang",
			domain.MetricHousesLight:    "Rumah_Rusak_Ringan",
			domain.MetricHousesFlooded:  "Rumah_Terendam",
			domain.MetricEduFacilities:  "Fasilitas_Pendidikan",
			domain.MetricWorship:        "Fasilitas_Peribadatan",
			domain.MetricHealth:         "Fasilitas_Kesehatan",
		},
	},
}

// MappingForYear returns the schema mapping for a supported recap year.
func MappingForYear(year int) (domain.Mapping, bool) {
	m, ok := mappings[year]
	return m, ok
}
