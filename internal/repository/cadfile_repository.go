package repository // repository defines data access for CAD files

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/autolight/autolight-analyser/internal/model"
)

// ErrCADFileNotFound is returned when a CAD file lookup yields no rows.
var ErrCADFileNotFound = errors.New("cad file not found")

// CADFileRepo provides methods to work with uploaded CAD files.
type CADFileRepo struct {
	db *sql.DB
}

// NewCADFileRepo constructs a CADFileRepo with the given DB handle.
func NewCADFileRepo(db *sql.DB) *CADFileRepo {
	return &CADFileRepo{db: db}
}

const cadColumns = `id, user_id, project_name, filename, status, error_message, uploaded_at, processed_at`

func scanCADFile(row interface{ Scan(...any) error }, f *model.CADFile) error {
	return row.Scan(&f.ID, &f.UserID, &f.ProjectName, &f.Filename,
		&f.Status, &f.ErrorMessage, &f.UploadedAt, &f.ProcessedAt)
}

// Create inserts a CAD file record with status pending.  On success the
// ID and timestamps are populated from the stored row.
func (r *CADFileRepo) Create(ctx context.Context, f *model.CADFile) error {
	const qInsert = `INSERT INTO cad_files (user_id, project_name, filename, status)
	                 VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, f.UserID, f.ProjectName, f.Filename, model.CADStatusPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = `SELECT ` + cadColumns + ` FROM cad_files WHERE id = ?`
	return scanCADFile(r.db.QueryRowContext(ctx, qSelect, f.ID), f)
}

// GetByIDAndUser retrieves a CAD file but only if it belongs to the
// given user.  If no matching row is found, ErrCADFileNotFound is
// returned.
func (r *CADFileRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.CADFile, error) {
	const q = `SELECT ` + cadColumns + ` FROM cad_files WHERE id = ? AND user_id = ?`
	var f model.CADFile
	if err := scanCADFile(r.db.QueryRowContext(ctx, q, id, userID), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCADFileNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByUser returns all CAD files uploaded by a user, newest first.
func (r *CADFileRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.CADFile, error) {
	const q = `SELECT ` + cadColumns + ` FROM cad_files
	           WHERE user_id = ?
	           ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.CADFile
	for rows.Next() {
		f := new(model.CADFile)
		if err := scanCADFile(rows, f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves a CAD file through its processing lifecycle.  The
// processed_at timestamp is set when the status is terminal, and the
// error message is stored for failed runs.  Returns sql.ErrNoRows when
// the file does not exist.
func (r *CADFileRepo) UpdateStatus(ctx context.Context, id uint64, status string, errorMessage *string) error {
	terminal := status == model.CADStatusCompleted || status == model.CADStatusFailed
	var q string
	if terminal {
		q = `UPDATE cad_files SET status = ?, error_message = ?, processed_at = NOW() WHERE id = ?`
	} else {
		q = `UPDATE cad_files SET status = ?, error_message = ? WHERE id = ?`
	}
	res, err := r.db.ExecContext(ctx, q, status, errorMessage, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByIDAndUser removes a CAD file and everything it owns: report
// records, fixture installations of its rooms, and the rooms
// themselves.  The whole cascade runs in one transaction so a partial
// delete can never be observed.  Returns ErrCADFileNotFound when the
// file does not exist or belongs to someone else.
func (r *CADFileRepo) DeleteByIDAndUser(ctx context.Context, id, userID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var lockedID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM cad_files WHERE id = ? AND user_id = ? FOR UPDATE`,
		id, userID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCADFileNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE fi FROM fixture_installations fi
		 JOIN rooms r ON r.id = fi.room_id
		 WHERE r.cad_file_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE cad_file_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE cad_file_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cad_files WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
