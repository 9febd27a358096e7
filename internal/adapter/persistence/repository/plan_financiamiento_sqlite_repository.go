package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"
)

const planColumns = `id, nombre, porcentaje_anual, cantidad_cuotas, tipo_cuota_inicial,
	valor_cuota_inicial, activo, created_at, updated_at`

// PlanFinanciamientoSQLiteRepository persists PlanFinanciamiento records in
// SQLite. UNIQUE(nombre) backs the name uniqueness rule; the
// financiamientos_lote foreign key refuses deletion of a referenced plan.

type PlanFinanciamientoSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IPlanFinanciamientoRepository = (*PlanFinanciamientoSQLiteRepository)(nil)

func NewPlanFinanciamientoSQLiteRepository(db *sql.DB) *PlanFinanciamientoSQLiteRepository {
	return &PlanFinanciamientoSQLiteRepository{db: db}
}

func (r *PlanFinanciamientoSQLiteRepository) Create(ctx context.Context, p entities.PlanFinanciamiento) (entities.PlanFinanciamiento, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO planes_financiamiento (`+planColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Nombre, p.PorcentajeAnual, p.CantidadCuotas, string(p.TipoCuotaInicial),
		p.ValorCuotaInicial, p.Activo, formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return entities.PlanFinanciamiento{}, translateSQLiteError(err)
	}
	return p, nil
}

func (r *PlanFinanciamientoSQLiteRepository) GetByID(ctx context.Context, id string) (entities.PlanFinanciamiento, error) {
	return r.getOne(ctx, `SELECT `+planColumns+` FROM planes_financiamiento WHERE id = ?`, id)
}

func (r *PlanFinanciamientoSQLiteRepository) GetByNombre(ctx context.Context, nombre string) (entities.PlanFinanciamiento, error) {
	return r.getOne(ctx, `SELECT `+planColumns+` FROM planes_financiamiento WHERE nombre = ?`, nombre)
}

func (r *PlanFinanciamientoSQLiteRepository) List(ctx context.Context) ([]entities.PlanFinanciamiento, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+planColumns+` FROM planes_financiamiento ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.PlanFinanciamiento
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlanFinanciamientoSQLiteRepository) Update(ctx context.Context, p entities.PlanFinanciamiento) (entities.PlanFinanciamiento, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE planes_financiamiento SET nombre = ?, porcentaje_anual = ?, cantidad_cuotas = ?,
			tipo_cuota_inicial = ?, valor_cuota_inicial = ?, activo = ?, updated_at = ?
		 WHERE id = ?`,
		p.Nombre, p.PorcentajeAnual, p.CantidadCuotas,
		string(p.TipoCuotaInicial), p.ValorCuotaInicial, p.Activo, formatTime(p.UpdatedAt),
		p.ID)
	if err != nil {
		return entities.PlanFinanciamiento{}, translateSQLiteError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.PlanFinanciamiento{}, fmt.Errorf("%w: plan de financiamiento %s", interfaces.ErrNotFound, p.ID)
	}
	return p, nil
}

func (r *PlanFinanciamientoSQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM planes_financiamiento WHERE id = ?`, id)
	return translateSQLiteError(err)
}

func (r *PlanFinanciamientoSQLiteRepository) CountFinanciamientos(ctx context.Context, planID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM financiamientos_lote WHERE plan_financiamiento_id = ?`, planID).Scan(&n)
	return n, err
}

func (r *PlanFinanciamientoSQLiteRepository) getOne(ctx context.Context, query, arg string) (entities.PlanFinanciamiento, error) {
	p, err := scanPlan(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PlanFinanciamiento{}, nil
	}
	return p, err
}

func scanPlan(row rowScanner) (entities.PlanFinanciamiento, error) {
	var p entities.PlanFinanciamiento
	var tipo, createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Nombre, &p.PorcentajeAnual, &p.CantidadCuotas, &tipo,
		&p.ValorCuotaInicial, &p.Activo, &createdAt, &updatedAt); err != nil {
		return entities.PlanFinanciamiento{}, err
	}
	p.TipoCuotaInicial = entities.TipoCuotaInicial(tipo)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
