package entity

import (
	"time"

	"github.com/google/uuid"
)

// HoldingRecord is one holdings row as pulled from Alma Analytics: the
// 852 field plus the identifying columns the report carries alongside it.
type HoldingRecord struct {
	PermanentCallNumber     string
	PermanentCallNumberType string
	MARC852                 string
	NormalizedCallNumber    string
	InstitutionName         string
	MMSID                   string
	HoldingsID              string
	Suppressed              string
}

// AnalyzedRecord is a HoldingRecord plus everything the classifier
// derived from it. String fields hold the exact values written to the
// report workbook.
type AnalyzedRecord struct {
	HoldingRecord

	// ExtractedCallNumber is the text resolved from the 852 subfields,
	// empty when no call number subfield was present.
	ExtractedCallNumber string

	// Flags recording which subfield supplied the call number.
	FromJ     bool
	JCombined bool
	JConflict bool

	CurrentIndicator   string
	SuggestedIndicator string
	ChangeNeeded       string
	ClassificationType string
	Confidence         string
	SubfieldChanges    string
	Notes              string
}

// PullRun records one Analytics pull for an institution.
type PullRun struct {
	ID              uuid.UUID
	InstitutionCode string
	ReportPath      string
	RowCount        int
	Status          string
	StartedAt       time.Time
	FinishedAt      time.Time
}
