package repository // repository defines data access for fixture installations

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/autolight/autolight-analyser/internal/model"
)

// ErrInstallationNotFound is returned when an installation lookup
// yields no rows.
var ErrInstallationNotFound = errors.New("fixture installation not found")

// InstallationRepo provides methods to work with fixture installations.
// List queries join the catalog so callers receive installations with
// the Fixture field resolved, ready for illuminance aggregation.
type InstallationRepo struct {
	db *sql.DB
}

// NewInstallationRepo constructs an InstallationRepo with the given DB handle.
func NewInstallationRepo(db *sql.DB) *InstallationRepo {
	return &InstallationRepo{db: db}
}

// joined column list: installation row followed by its catalog row.
const installationJoinColumns = `fi.id, fi.room_id, fi.catalog_id, fi.quantity, fi.x_coordinate, fi.y_coordinate,
	cf.id, cf.symbol_name, cf.brand, cf.model_number, cf.lumens, cf.wattage, cf.beam_angle, cf.color_temp, cf.unit_cost, cf.created_at, cf.updated_at`

func scanInstallation(row interface{ Scan(...any) error }, inst *model.FixtureInstallation) error {
	return row.Scan(&inst.ID, &inst.RoomID, &inst.CatalogID, &inst.Quantity, &inst.X, &inst.Y,
		&inst.Fixture.ID, &inst.Fixture.SymbolName, &inst.Fixture.Brand, &inst.Fixture.ModelNumber,
		&inst.Fixture.Lumens, &inst.Fixture.Wattage, &inst.Fixture.BeamAngle, &inst.Fixture.ColorTemp,
		&inst.Fixture.UnitCost, &inst.Fixture.CreatedAt, &inst.Fixture.UpdatedAt)
}

// Create inserts an installation record.  On success the ID is
// populated; the Fixture field is left for the caller or a follow-up
// list query to resolve.
func (r *InstallationRepo) Create(ctx context.Context, inst *model.FixtureInstallation) error {
	const q = `INSERT INTO fixture_installations (room_id, catalog_id, quantity, x_coordinate, y_coordinate)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, inst.RoomID, inst.CatalogID, inst.Quantity, inst.X, inst.Y)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inst.ID = uint64(id)
	return nil
}

// GetByIDAndUser retrieves one installation with its catalog fixture
// resolved, enforcing ownership through room -> cad_file.
func (r *InstallationRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.FixtureInstallation, error) {
	const q = `SELECT ` + installationJoinColumns + `
	           FROM fixture_installations fi
	           JOIN catalog_fixtures cf ON cf.id = fi.catalog_id
	           JOIN rooms r ON r.id = fi.room_id
	           JOIN cad_files c ON c.id = r.cad_file_id
	           WHERE fi.id = ? AND c.user_id = ?`
	var inst model.FixtureInstallation
	if err := scanInstallation(r.db.QueryRowContext(ctx, q, id, userID), &inst); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInstallationNotFound
		}
		return nil, err
	}
	return &inst, nil
}

// ListByRoom retrieves all installations of a room, each with its
// catalog fixture resolved, ordered by catalog symbol.
func (r *InstallationRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.FixtureInstallation, error) {
	const q = `SELECT ` + installationJoinColumns + `
	           FROM fixture_installations fi
	           JOIN catalog_fixtures cf ON cf.id = fi.catalog_id
	           WHERE fi.room_id = ?
	           ORDER BY cf.symbol_name, fi.id`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.FixtureInstallation
	for rows.Next() {
		var inst model.FixtureInstallation
		if err := scanInstallation(rows, &inst); err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateQuantity changes how many units of the fixture are installed,
// enforcing ownership through room -> cad_file.  Returns sql.ErrNoRows
// when not found or not owned by this user.
func (r *InstallationRepo) UpdateQuantity(ctx context.Context, id, userID uint64, quantity int) error {
	const q = `UPDATE fixture_installations fi
	           JOIN rooms r ON r.id = fi.room_id
	           JOIN cad_files c ON c.id = r.cad_file_id
	           SET fi.quantity = ?
	           WHERE fi.id = ? AND c.user_id = ?`
	res, err := r.db.ExecContext(ctx, q, quantity, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByIDAndUser removes one installation, enforcing ownership
// through room -> cad_file.
func (r *InstallationRepo) DeleteByIDAndUser(ctx context.Context, id, userID uint64) error {
	const q = `DELETE fi FROM fixture_installations fi
	           JOIN rooms r ON r.id = fi.room_id
	           JOIN cad_files c ON c.id = r.cad_file_id
	           WHERE fi.id = ? AND c.user_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByCatalog reports how many installations reference a catalog
// fixture.  Used to block catalog deletions that would orphan rooms.
func (r *InstallationRepo) CountByCatalog(ctx context.Context, catalogID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM fixture_installations WHERE catalog_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, catalogID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
