package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"
)

const loteColumns = `id, manzano, numero, nombre, zona, superficie_m2, precio_m2, precio_contado,
	estado, forma_venta, urbanizacion_id, created_at, updated_at`

// LoteSQLiteRepository persists Lote records in SQLite.
//
// UNIQUE(urbanizacion_id, manzano, numero) backs the location uniqueness
// rule; the financiamientos_lote foreign key cascades on lot deletion.

type LoteSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ILoteRepository = (*LoteSQLiteRepository)(nil)

func NewLoteSQLiteRepository(db *sql.DB) *LoteSQLiteRepository {
	return &LoteSQLiteRepository{db: db}
}

func (r *LoteSQLiteRepository) Create(ctx context.Context, l entities.Lote) (entities.Lote, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lotes (`+loteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Manzano, l.Numero, l.Nombre, l.Zona, l.SuperficieM2, l.PrecioM2, l.PrecioContado,
		string(l.Estado), string(l.FormaVenta), l.UrbanizacionID, formatTime(l.CreatedAt), formatTime(l.UpdatedAt))
	if err != nil {
		return entities.Lote{}, translateSQLiteError(err)
	}
	return l, nil
}

func (r *LoteSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Lote, error) {
	l, err := scanLote(r.db.QueryRowContext(ctx,
		`SELECT `+loteColumns+` FROM lotes WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Lote{}, nil
	}
	return l, err
}

func (r *LoteSQLiteRepository) FindByUbicacion(ctx context.Context, urbanizacionID, manzano string, numero int) (entities.Lote, error) {
	l, err := scanLote(r.db.QueryRowContext(ctx,
		`SELECT `+loteColumns+` FROM lotes WHERE urbanizacion_id = ? AND manzano = ? AND numero = ?`,
		urbanizacionID, manzano, numero))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Lote{}, nil
	}
	return l, err
}

func (r *LoteSQLiteRepository) List(ctx context.Context) ([]entities.Lote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+loteColumns+` FROM lotes ORDER BY manzano, numero`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Lote
	for rows.Next() {
		l, err := scanLote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LoteSQLiteRepository) Update(ctx context.Context, l entities.Lote) (entities.Lote, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE lotes SET manzano = ?, numero = ?, nombre = ?, zona = ?, superficie_m2 = ?, precio_m2 = ?,
			precio_contado = ?, estado = ?, forma_venta = ?, urbanizacion_id = ?, updated_at = ?
		 WHERE id = ?`,
		l.Manzano, l.Numero, l.Nombre, l.Zona, l.SuperficieM2, l.PrecioM2,
		l.PrecioContado, string(l.Estado), string(l.FormaVenta), l.UrbanizacionID, formatTime(l.UpdatedAt),
		l.ID)
	if err != nil {
		return entities.Lote{}, translateSQLiteError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Lote{}, fmt.Errorf("%w: lote %s", interfaces.ErrNotFound, l.ID)
	}
	return l, nil
}

// Delete removes the lot; the schema cascades to its financiamientos.
func (r *LoteSQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lotes WHERE id = ?`, id)
	return translateSQLiteError(err)
}

func scanLote(row rowScanner) (entities.Lote, error) {
	var l entities.Lote
	var estado, formaVenta, createdAt, updatedAt string
	if err := row.Scan(&l.ID, &l.Manzano, &l.Numero, &l.Nombre, &l.Zona, &l.SuperficieM2, &l.PrecioM2,
		&l.PrecioContado, &estado, &formaVenta, &l.UrbanizacionID, &createdAt, &updatedAt); err != nil {
		return entities.Lote{}, err
	}
	l.Estado = entities.EstadoLote(estado)
	l.FormaVenta = entities.FormaVenta(formaVenta)
	l.CreatedAt = parseTime(createdAt)
	l.UpdatedAt = parseTime(updatedAt)
	return l, nil
}
