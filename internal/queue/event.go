// Package queue defines message payloads exchanged over the message broker.
package queue

// ReportRequestedEvent is published when an architect requests a report
// for a CAD file.  It carries enough information for the rendering
// worker to produce the document without querying the primary database
// for anything but room data.
type ReportRequestedEvent struct {
	ReportID    uint64 `json:"report_id"`
	CADFileID   uint64 `json:"cad_file_id"`
	UserID      uint64 `json:"user_id"`
	ProjectName string `json:"project_name"`
	ReportType  string `json:"report_type"`
	FilePath    string `json:"file_path"`
	RoomCount   int    `json:"room_count"`
	RequestedAt string `json:"requested_at"`
}
