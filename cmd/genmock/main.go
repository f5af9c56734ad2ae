// Command genmock writes a pair of small BNPB-shaped recap workbooks for
// local runs and manual testing. The fixtures reproduce the quirks the
// pipeline has to survive: title chrome above the header row, placeholder
// province codes, dash cells, thousands separators, a negative value, an
// unparseable cell, and an exact duplicate row.
//
// Usage:
//
//	go run ./cmd/genmock -out-dir data
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

var rows2023 = [][]any{
	{"Rekap Bencana Indonesia 2023"},
	{},
	{"Kode Wilayah Provinsi", "Provinsi", "Jenis Bencana", "Jumlah Kejadian", "Meninggal & Hilang", "Luka-Luka", "Mengungsi & Terdampak", "Rumah Rusak Berat", "Rumah Rusak Sedang", "Rumah Rusak Ringan", "Rumah Terendam", "Fasilitas Pendidikan", "Fasilitas Peribadatan", "Fasilitas Kesehatan"},
	{"11", "ACEH", "Banjir", "38", "4", "12", "12,504", "31", "45", "102", "2,210", "8", "3", "1"},
	{"12", "SUMATERA UTARA", "Banjir", "27", "2", "5", "8,410", "12", "20", "61", "1,530", "4", "2", "0"},
	{"31", "DKI JAKARTA", "Banjir", "14", "-", "3", "21,040", "2", "9", "40", "5,300", "2", "1", "1"},
	{"32", "JAWA BARAT", "Tanah Longsor", "96", "21", "34", "9,880", "210", "340", "890", "-", "15", "9", "4"},
	{"33", "JAWA TENGAH", "Puting Beliung", "81", "3", "19", "4,220", "95", "180", "650", "-", "11", "6", "2"},
	{"51", "BALI", "Gempa Bumi", "9", "1", "27", "1,350", "60", "85", "150", "-", "5", "7", "2"},
	{"51", "BALI", "Gempa Bumi", "9", "1", "27", "1,350", "60", "85", "150", "-", "5", "7", "2"}, // double-listed in the source recap
	{"94", "PAPUA", "Banjir", "6", "-2", "n/a", "980", "7", "11", "24", "310", "1", "0", "1"},
	{"-1", "Jumlah", "", "271", "31", "100", "58,384", "417", "690", "1,917", "9,350", "46", "28", "11"},
}

var rows2024 = [][]any{
	{"Kode_Provinsi", "Provinsi", "Jenis_Bencana", "Jumlah_Kejadian", "Meninggal_Hilang", "Luka_Luka", "Mengungsi_Terdampak", "Rumah_Rusak_Berat", "Rumah_Rusak_Sedang", "Rumah_Rusak_Ringan", "Rumah_Terendam", "Fasilitas_Pendidikan", "Fasilitas_Peribadatan", "Fasilitas_Kesehatan"},
	{"11", "Aceh", "Banjir", "45", "7", "18", "15,902", "44", "67", "150", "3,104", "10", "4", "2"},
	{"31", "DKI Jakarta", "Banjir", "11", "1", "2", "17,220", "1", "6", "28", "4,105", "1", "1", "0"},
	{"32", "Jawa Barat", "Tanah Longsor", "88", "18", "29", "8,740", "180", "295", "760", "-", "12", "8", "3"},
	{"35", "Jawa Timur", "Banjir", "63", "5", "9", "7,120", "55", "120", "370", "1,980", "9", "5", "2"},
	{"51", "Bali", "Gempa Bumi", "4", "-", "8", "640", "18", "31", "66", "-", "2", "3", "1"},
	{"73", "Sulawesi Selatan", "Banjir", "22", "6", "11", "5,470", "36", "58", "140", "890", "6", "2", "1"},
	{"-2", "Total", "", "233", "37", "77", "55,092", "334", "577", "1,514", "10,079", "40", "23", "9"},
}

func main() {
	outDir := flag.String("out-dir", "data", "directory for Data_2023.xlsx and Data_2024.xlsx")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: create output dir: %v\n", err)
		os.Exit(1)
	}

	files := map[string][][]any{
		"Data_2023.xlsx": rows2023,
		"Data_2024.xlsx": rows2024,
	}
	for _, name := range []string{"Data_2023.xlsx", "Data_2024.xlsx"} {
		path := filepath.Join(*outDir, name)
		if err := writeWorkbook(path, files[name]); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d rows)\n", path, len(files[name]))
	}
}

func writeWorkbook(path string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
