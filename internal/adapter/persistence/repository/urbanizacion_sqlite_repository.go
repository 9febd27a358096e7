package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"
)

// UrbanizacionSQLiteRepository persists Urbanizacion records in SQLite.
//
// The UNIQUE(nombre) constraint backs the name uniqueness rule; deletion of
// a referenced urbanizacion is refused by the lotes foreign key.

type UrbanizacionSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IUrbanizacionRepository = (*UrbanizacionSQLiteRepository)(nil)

func NewUrbanizacionSQLiteRepository(db *sql.DB) *UrbanizacionSQLiteRepository {
	return &UrbanizacionSQLiteRepository{db: db}
}

func (r *UrbanizacionSQLiteRepository) Create(ctx context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO urbanizaciones (id, nombre, ubicacion, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Nombre, u.Ubicacion, formatTime(u.CreatedAt), formatTime(u.UpdatedAt))
	if err != nil {
		return entities.Urbanizacion{}, translateSQLiteError(err)
	}
	return u, nil
}

func (r *UrbanizacionSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Urbanizacion, error) {
	return r.getOne(ctx, `SELECT id, nombre, ubicacion, created_at, updated_at FROM urbanizaciones WHERE id = ?`, id)
}

func (r *UrbanizacionSQLiteRepository) GetByNombre(ctx context.Context, nombre string) (entities.Urbanizacion, error) {
	return r.getOne(ctx, `SELECT id, nombre, ubicacion, created_at, updated_at FROM urbanizaciones WHERE nombre = ?`, nombre)
}

func (r *UrbanizacionSQLiteRepository) List(ctx context.Context) ([]entities.Urbanizacion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nombre, ubicacion, created_at, updated_at FROM urbanizaciones ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Urbanizacion
	for rows.Next() {
		u, err := scanUrbanizacion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UrbanizacionSQLiteRepository) Update(ctx context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE urbanizaciones SET nombre = ?, ubicacion = ?, updated_at = ? WHERE id = ?`,
		u.Nombre, u.Ubicacion, formatTime(u.UpdatedAt), u.ID)
	if err != nil {
		return entities.Urbanizacion{}, translateSQLiteError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Urbanizacion{}, fmt.Errorf("%w: urbanizacion %s", interfaces.ErrNotFound, u.ID)
	}
	return u, nil
}

func (r *UrbanizacionSQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM urbanizaciones WHERE id = ?`, id)
	return translateSQLiteError(err)
}

func (r *UrbanizacionSQLiteRepository) CountLotes(ctx context.Context, urbanizacionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lotes WHERE urbanizacion_id = ?`, urbanizacionID).Scan(&n)
	return n, err
}

func (r *UrbanizacionSQLiteRepository) getOne(ctx context.Context, query, arg string) (entities.Urbanizacion, error) {
	u, err := scanUrbanizacion(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Urbanizacion{}, nil
	}
	return u, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUrbanizacion(row rowScanner) (entities.Urbanizacion, error) {
	var u entities.Urbanizacion
	var createdAt, updatedAt string
	if err := row.Scan(&u.ID, &u.Nombre, &u.Ubicacion, &createdAt, &updatedAt); err != nil {
		return entities.Urbanizacion{}, err
	}
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return u, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
