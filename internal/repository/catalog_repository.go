package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions
	"strings"      // strings matches driver error codes

	"github.com/autolight/autolight-analyser/internal/model"
)

// ErrFixtureNotFound is returned when a catalog lookup fails.
var ErrFixtureNotFound = errors.New("catalog fixture not found")

// CatalogRepo provides read and import access to the lighting catalog.
// The catalog is seeded once and treated as a read-only snapshot during
// illuminance and recommendation computations.
type CatalogRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewCatalogRepo constructs a CatalogRepo with the given DB handle.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const catalogColumns = `id, symbol_name, brand, model_number, lumens, wattage, beam_angle, color_temp, unit_cost, created_at, updated_at`

func scanFixture(row interface{ Scan(...any) error }, f *model.CatalogFixture) error {
	return row.Scan(&f.ID, &f.SymbolName, &f.Brand, &f.ModelNumber,
		&f.Lumens, &f.Wattage, &f.BeamAngle, &f.ColorTemp, &f.UnitCost,
		&f.CreatedAt, &f.UpdatedAt)
}

// Create inserts a new catalog fixture.  On success the fixture's ID
// and timestamps are populated from the stored row.
func (r *CatalogRepo) Create(ctx context.Context, f *model.CatalogFixture) error {
	const qInsert = `INSERT INTO catalog_fixtures
	                 (symbol_name, brand, model_number, lumens, wattage, beam_angle, color_temp, unit_cost)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		f.SymbolName, f.Brand, f.ModelNumber, f.Lumens, f.Wattage, f.BeamAngle, f.ColorTemp, f.UnitCost)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = `SELECT ` + catalogColumns + ` FROM catalog_fixtures WHERE id = ?`
	return scanFixture(r.db.QueryRowContext(ctx, qSelect, f.ID), f)
}

// GetByID retrieves a catalog fixture by its primary key.  Returns
// ErrFixtureNotFound when no row exists.
func (r *CatalogRepo) GetByID(ctx context.Context, id uint64) (*model.CatalogFixture, error) {
	const q = `SELECT ` + catalogColumns + ` FROM catalog_fixtures WHERE id = ?`
	var f model.CatalogFixture
	if err := scanFixture(r.db.QueryRowContext(ctx, q, id), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}
	return &f, nil
}

// GetBySymbol retrieves a catalog fixture by its unique symbol name.
// Returns ErrFixtureNotFound when the symbol is absent.
func (r *CatalogRepo) GetBySymbol(ctx context.Context, symbol string) (*model.CatalogFixture, error) {
	const q = `SELECT ` + catalogColumns + ` FROM catalog_fixtures WHERE symbol_name = ?`
	var f model.CatalogFixture
	if err := scanFixture(r.db.QueryRowContext(ctx, q, symbol), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListAll returns the whole catalog ordered by symbol name.  The
// result is the immutable snapshot recommendation queries run over.
func (r *CatalogRepo) ListAll(ctx context.Context) ([]model.CatalogFixture, error) {
	const q = `SELECT ` + catalogColumns + ` FROM catalog_fixtures ORDER BY symbol_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CatalogFixture
	for rows.Next() {
		var f model.CatalogFixture
		if err := scanFixture(rows, &f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes a catalog fixture.  Returns sql.ErrNoRows when it
// does not exist and ErrConflict when the row is still referenced by a
// fixture installation (MySQL error 1451).
func (r *CatalogRepo) DeleteByID(ctx context.Context, id uint64) error {
	const q = `DELETE FROM catalog_fixtures WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if strings.Contains(err.Error(), "1451") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateMetadata changes the cosmetic fields of a fixture (brand and
// model number).  Photometric and price fields are immutable once the
// entry exists.  Returns sql.ErrNoRows when the fixture is missing.
func (r *CatalogRepo) UpdateMetadata(ctx context.Context, id uint64, brand, modelNumber string) error {
	const q = `UPDATE catalog_fixtures
	           SET brand = ?, model_number = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, brand, modelNumber, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
