package model

import "time"

// Report type identifiers.
const (
	ReportTypePDF = "pdf"
	ReportTypeCSV = "csv"
)

// Report records a requested lighting report for a CAD file.  The
// actual PDF/CSV rendering happens in a downstream worker; this service
// creates the record, publishes a report.requested event and stores the
// path the renderer will write to.
//
// Fields:
//  ID          – primary key identifier.
//  CADFileID   – CAD file the report covers.
//  ReportType  – pdf | csv.
//  FilePath    – storage path assigned when the report was requested.
//  GeneratedAt – request timestamp.
type Report struct {
	ID          uint64    `json:"id"`           // reports.id
	CADFileID   uint64    `json:"cad_file_id"`  // reports.cad_file_id
	ReportType  string    `json:"report_type"`  // reports.report_type
	FilePath    string    `json:"file_path"`    // reports.file_path
	GeneratedAt time.Time `json:"generated_at"` // reports.generated_at
}
