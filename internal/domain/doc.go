// Package domain models Indonesian BNPB disaster recap data.
//
// # Data Source
//
// Records originate from the BNPB (Badan Nasional Penanggulangan Bencana)
// yearly recap workbooks, one xlsx file per year. Each workbook carries a
// per-province summary section headed by a "Kode Wilayah Provinsi" column.
// Rows above the header are title and preamble chrome; rows below it are
// one province-and-disaster-type entry each.
//
// # Recap Sheet Conventions
//
// Column headers:
//
//	Header names, order, and casing differ between the yearly files
//	(e.g. "Jumlah Kejadian" vs "Jumlah_Kejadian"). A per-year Mapping
//	translates source headers to canonical fields; headers are matched
//	case-insensitively after trimming.
//
// Numeric cells:
//
//	Counts may arrive as text with thousands separators ("1,204"), as
//	floats ("3.0"), or as the dash placeholders "-", "—", "–" which BNPB
//	uses for "no data". Dashes and blanks are read as zero. Text that is
//	not a recognized number is zero-filled and counted, or rejects the
//	row under PolicyReject. Negative values are clamped to zero and
//	counted, or reject the row under PolicyReject.
//
// Province names:
//
//	Free-text, inconsistently cased across files ("DKI JAKARTA",
//	"dki jakarta"). Names are trimmed and title-cased so the province is
//	a stable grouping key across years.
//
// Placeholder rows:
//
//	Recap sheets include placeholder entries whose province code starts
//	with "-" (-1, -2, ...). These carry no province data and are dropped.
//
// # Immutability
//
// A Table is built once per ingest and never mutated; every summary is
// recomputed from the table plus the caller's filter.
package domain
