package repository // repository defines data access for rooms

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/autolight/autolight-analyser/internal/model"
)

// ErrRoomNotFound is returned when a room lookup yields no rows.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides methods to work with rooms in the database.  Rooms
// are always written post-normalization: callers run the lighting
// package's Normalize/Validate before Create or Update.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomColumns = `id, cad_file_id, name, room_type, length, width, area, height, required_lux`

func scanRoom(row interface{ Scan(...any) error }, rm *model.Room) error {
	return row.Scan(&rm.ID, &rm.CADFileID, &rm.Name, &rm.RoomType,
		&rm.Length, &rm.Width, &rm.Area, &rm.Height, &rm.RequiredLux)
}

// Create inserts a room record.  On success the room's ID is populated.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = `INSERT INTO rooms (cad_file_id, name, room_type, length, width, area, height, required_lux)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		rm.CADFileID, rm.Name, rm.RoomType, rm.Length, rm.Width, rm.Area, rm.Height, rm.RequiredLux)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	return nil
}

// GetByID retrieves a room by its id (no ownership check).
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	var rm model.Room
	if err := scanRoom(r.db.QueryRowContext(ctx, q, id), &rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// GetByIDAndUser retrieves a room while enforcing ownership through its
// CAD file.  Returns ErrRoomNotFound when the room does not exist or
// the CAD file belongs to another user.
func (r *RoomRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.Room, error) {
	const q = `SELECT r.id, r.cad_file_id, r.name, r.room_type, r.length, r.width, r.area, r.height, r.required_lux
	           FROM rooms r
	           JOIN cad_files cf ON cf.id = r.cad_file_id
	           WHERE r.id = ? AND cf.user_id = ?`
	var rm model.Room
	if err := scanRoom(r.db.QueryRowContext(ctx, q, id, userID), &rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// ListByCADFile retrieves all rooms of a CAD file ordered by name.
func (r *RoomRepo) ListByCADFile(ctx context.Context, cadFileID uint64) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms
	           WHERE cad_file_id = ?
	           ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, q, cadFileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var rm model.Room
		if err := scanRoom(rows, &rm); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the editable fields of a room while enforcing
// ownership through its CAD file.  Returns sql.ErrNoRows when not found
// or not owned by this user.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room, userID uint64) error {
	const q = `UPDATE rooms r
	           JOIN cad_files cf ON cf.id = r.cad_file_id
	           SET r.name = ?, r.room_type = ?, r.length = ?, r.width = ?,
	               r.area = ?, r.height = ?, r.required_lux = ?
	           WHERE r.id = ? AND cf.user_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		rm.Name, rm.RoomType, rm.Length, rm.Width, rm.Area, rm.Height, rm.RequiredLux,
		rm.ID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByIDAndUser removes a room and, because the room exclusively
// owns them, all of its fixture installations.  Both deletes run in one
// transaction.  Returns ErrRoomNotFound when the room does not exist or
// is owned by someone else.
func (r *RoomRepo) DeleteByIDAndUser(ctx context.Context, id, userID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var lockedID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT r.id FROM rooms r
		 JOIN cad_files cf ON cf.id = r.cad_file_id
		 WHERE r.id = ? AND cf.user_id = ? FOR UPDATE`,
		id, userID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM fixture_installations WHERE room_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
