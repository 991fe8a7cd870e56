package repository // repository defines data access for report records

import (
	"context"
	"database/sql"
	"errors"

	"github.com/autolight/autolight-analyser/internal/model"
)

// ErrReportNotFound is returned when a report lookup yields no rows.
var ErrReportNotFound = errors.New("report not found")

// ReportRepo persists report request records.  Rendering happens in a
// downstream worker; this repository only tracks what was requested and
// where the output will live.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo constructs a ReportRepo with the given DB handle.
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Create inserts a report record.  On success the ID and timestamp are
// populated from the stored row.
func (r *ReportRepo) Create(ctx context.Context, rep *model.Report) error {
	const qInsert = `INSERT INTO reports (cad_file_id, report_type, file_path) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, rep.CADFileID, rep.ReportType, rep.FilePath)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rep.ID = uint64(id)

	const qSelect = `SELECT id, cad_file_id, report_type, file_path, generated_at FROM reports WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, rep.ID).
		Scan(&rep.ID, &rep.CADFileID, &rep.ReportType, &rep.FilePath, &rep.GeneratedAt)
}

// ListByCADFile returns all reports requested for a CAD file, newest
// first.
func (r *ReportRepo) ListByCADFile(ctx context.Context, cadFileID uint64) ([]model.Report, error) {
	const q = `SELECT id, cad_file_id, report_type, file_path, generated_at
	           FROM reports
	           WHERE cad_file_id = ?
	           ORDER BY generated_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, cadFileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Report
	for rows.Next() {
		var rep model.Report
		if err := rows.Scan(&rep.ID, &rep.CADFileID, &rep.ReportType, &rep.FilePath, &rep.GeneratedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndUser retrieves a report while enforcing ownership through
// its CAD file.
func (r *ReportRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.Report, error) {
	const q = `SELECT rp.id, rp.cad_file_id, rp.report_type, rp.file_path, rp.generated_at
	           FROM reports rp
	           JOIN cad_files cf ON cf.id = rp.cad_file_id
	           WHERE rp.id = ? AND cf.user_id = ?`
	var rep model.Report
	err := r.db.QueryRowContext(ctx, q, id, userID).
		Scan(&rep.ID, &rep.CADFileID, &rep.ReportType, &rep.FilePath, &rep.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}
