package repository

import (
	"context"
	"database/sql"
	"errors"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"
)

const financiamientoColumns = `id, lote_id, plan_financiamiento_id, cuota_inicial, saldo_financiar,
	interes_total, cuota_mensual, precio_total_credito, created_at`

// FinanciamientoLoteSQLiteRepository persists FinanciamientoLote records in
// SQLite. UNIQUE(lote_id, plan_financiamiento_id) backs the pair uniqueness
// rule. No Update: the quote snapshot is immutable.

type FinanciamientoLoteSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IFinanciamientoLoteRepository = (*FinanciamientoLoteSQLiteRepository)(nil)

func NewFinanciamientoLoteSQLiteRepository(db *sql.DB) *FinanciamientoLoteSQLiteRepository {
	return &FinanciamientoLoteSQLiteRepository{db: db}
}

func (r *FinanciamientoLoteSQLiteRepository) Create(ctx context.Context, f entities.FinanciamientoLote) (entities.FinanciamientoLote, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO financiamientos_lote (`+financiamientoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.LoteID, f.PlanFinanciamientoID, f.CuotaInicial, f.SaldoFinanciar,
		f.InteresTotal, f.CuotaMensual, f.PrecioTotalCredito, formatTime(f.CreatedAt))
	if err != nil {
		return entities.FinanciamientoLote{}, translateSQLiteError(err)
	}
	return f, nil
}

func (r *FinanciamientoLoteSQLiteRepository) GetByID(ctx context.Context, id string) (entities.FinanciamientoLote, error) {
	f, err := scanFinanciamiento(r.db.QueryRowContext(ctx,
		`SELECT `+financiamientoColumns+` FROM financiamientos_lote WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.FinanciamientoLote{}, nil
	}
	return f, err
}

func (r *FinanciamientoLoteSQLiteRepository) GetByPair(ctx context.Context, loteID, planFinanciamientoID string) (entities.FinanciamientoLote, error) {
	f, err := scanFinanciamiento(r.db.QueryRowContext(ctx,
		`SELECT `+financiamientoColumns+` FROM financiamientos_lote WHERE lote_id = ? AND plan_financiamiento_id = ?`,
		loteID, planFinanciamientoID))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.FinanciamientoLote{}, nil
	}
	return f, err
}

func (r *FinanciamientoLoteSQLiteRepository) List(ctx context.Context) ([]entities.FinanciamientoLote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+financiamientoColumns+` FROM financiamientos_lote ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.FinanciamientoLote
	for rows.Next() {
		f, err := scanFinanciamiento(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FinanciamientoLoteSQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM financiamientos_lote WHERE id = ?`, id)
	return translateSQLiteError(err)
}

func scanFinanciamiento(row rowScanner) (entities.FinanciamientoLote, error) {
	var f entities.FinanciamientoLote
	var createdAt string
	if err := row.Scan(&f.ID, &f.LoteID, &f.PlanFinanciamientoID, &f.CuotaInicial, &f.SaldoFinanciar,
		&f.InteresTotal, &f.CuotaMensual, &f.PrecioTotalCredito, &createdAt); err != nil {
		return entities.FinanciamientoLote{}, err
	}
	f.CreatedAt = parseTime(createdAt)
	return f, nil
}
