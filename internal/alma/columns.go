package alma

import (
	"strings"

	"github.com/ils-data/marc852-audit/internal/entity"
)

// positionalColumns is the known report layout, used when the response
// schema carried no headings. Analytics prepends a dummy column 0.
var positionalColumns = []string{
	"Dummy",
	"MMS Id",
	"852 MARC",
	"Holdings ID",
	"Normalized Call Number",
	"Permanent Call Number Type",
	"Permanent Call Number",
	"Suppressed",
	"Institution Name",
	"Institution Code",
}

// columnFields maps report headings onto record fields by substring, so
// the full Analytics path names ("Holding Details::852 MARC") still
// match. More specific names come first: each column is claimed at most
// once, which keeps "Permanent Call Number" from also claiming the
// "Permanent Call Number Type" column.
var columnFields = []struct {
	name   string
	assign func(*entity.HoldingRecord, string)
}{
	{"Permanent Call Number Type", func(r *entity.HoldingRecord, v string) { r.PermanentCallNumberType = v }},
	{"Permanent Call Number", func(r *entity.HoldingRecord, v string) { r.PermanentCallNumber = v }},
	{"Normalized Call Number", func(r *entity.HoldingRecord, v string) { r.NormalizedCallNumber = v }},
	{"Institution Name", func(r *entity.HoldingRecord, v string) { r.InstitutionName = v }},
	{"852 MARC", func(r *entity.HoldingRecord, v string) { r.MARC852 = v }},
	{"Holdings ID", func(r *entity.HoldingRecord, v string) { r.HoldingsID = v }},
	{"MMS Id", func(r *entity.HoldingRecord, v string) { r.MMSID = v }},
	{"Suppressed", func(r *entity.HoldingRecord, v string) { r.Suppressed = v }},
}

// MapRows converts raw report rows to holdings records. Dummy and
// descriptor columns are dropped; unmatched fields stay empty rather
// than failing the pull.
func MapRows(columns []string, rows [][]string) []entity.HoldingRecord {
	if len(rows) == 0 {
		return nil
	}
	if len(columns) == 0 {
		width := len(rows[0])
		if width > len(positionalColumns) {
			width = len(positionalColumns)
		}
		columns = positionalColumns[:width]
	}

	claimed := make(map[int]func(*entity.HoldingRecord, string))
	taken := make(map[int]bool)
	for _, field := range columnFields {
		for idx, col := range columns {
			if taken[idx] || isDummyColumn(col) {
				continue
			}
			if strings.Contains(col, field.name) {
				claimed[idx] = field.assign
				taken[idx] = true
				break
			}
		}
	}

	records := make([]entity.HoldingRecord, 0, len(rows))
	for _, row := range rows {
		var rec entity.HoldingRecord
		for idx, assign := range claimed {
			if idx < len(row) {
				assign(&rec, row[idx])
			}
		}
		records = append(records, rec)
	}
	return records
}

func isDummyColumn(name string) bool {
	switch name {
	case "Column 0", "0", "Dummy":
		return true
	}
	return strings.Contains(strings.ToUpper(name), "DESCRIPTOR")
}
