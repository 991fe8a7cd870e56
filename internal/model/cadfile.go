package model

import "time"

// CAD file processing statuses.  A file starts as pending, moves to
// processing while the external extractor works on it, and ends up
// completed or failed.
const (
	CADStatusPending    = "pending"
	CADStatusProcessing = "processing"
	CADStatusCompleted  = "completed"
	CADStatusFailed     = "failed"
)

// CADFile is an uploaded CAD drawing that rooms are extracted from.
// Geometry extraction itself happens outside this service; we only
// track the file record and its processing status.  A CAD file owns
// its rooms: deleting the file cascades to rooms and installations.
//
// Fields:
//  ID           – primary key identifier.
//  UserID       – user who uploaded the file.
//  ProjectName  – human readable project label.
//  Filename     – original file name as uploaded.
//  Status       – pending | processing | completed | failed.
//  ErrorMessage – extractor error detail when Status is failed.
//  UploadedAt   – upload timestamp.
//  ProcessedAt  – when processing finished (nil while pending).
type CADFile struct {
	ID           uint64     `json:"id"`                      // cad_files.id
	UserID       uint64     `json:"user_id"`                 // cad_files.user_id
	ProjectName  string     `json:"project_name"`            // cad_files.project_name
	Filename     string     `json:"filename"`                // cad_files.filename
	Status       string     `json:"status"`                  // cad_files.status
	ErrorMessage *string    `json:"error_message,omitempty"` // cad_files.error_message (nullable)
	UploadedAt   time.Time  `json:"uploaded_at"`             // cad_files.uploaded_at
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`  // cad_files.processed_at (nullable)
}
