// Package rules holds the stateless business invariants. Every check takes
// the candidate values plus the already-loaded records it needs; the managers
// own all persistence access. A nil result means the invariant holds.
package rules

import (
	"fmt"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/pkg"
)

// CheckUrbanizacionReferencia validates that a referenced urbanizacion was
// resolved. u is the lookup result, nil when the id did not resolve.
func CheckUrbanizacionReferencia(u *entities.Urbanizacion) *pkg.AppError {
	if u == nil {
		return pkg.NewNotFound("La urbanización seleccionada no existe").
			WithField("urbanizacionId", "Urbanización no válida")
	}
	return nil
}

// CheckLoteReferencia validates that a referenced lote was resolved.
func CheckLoteReferencia(l *entities.Lote) *pkg.AppError {
	if l == nil {
		return pkg.NewNotFound("El lote seleccionado no existe").
			WithField("loteId", "Lote no válido")
	}
	return nil
}

// CheckPlanReferencia validates that a referenced plan was resolved.
func CheckPlanReferencia(p *entities.PlanFinanciamiento) *pkg.AppError {
	if p == nil {
		return pkg.NewNotFound("El plan de financiamiento seleccionado no existe").
			WithField("planFinanciamientoId", "Plan de financiamiento no válido")
	}
	return nil
}

// CheckLoteUbicacionLibre validates the (manzano, numero, urbanizacion)
// uniqueness triple. conflicto is the existing lote found at that triple, or
// nil; a record never conflicts with itself, so candidatoID is excluded.
func CheckLoteUbicacionLibre(conflicto *entities.Lote, candidatoID, manzano string, numero int, urbanizacionNombre string) *pkg.AppError {
	if conflicto == nil || conflicto.ID == candidatoID {
		return nil
	}
	msg := fmt.Sprintf("Ya existe el lote %s en la urbanización %q",
		entities.LoteNombre(manzano, numero), urbanizacionNombre)
	return pkg.NewConflict(msg).
		WithField("manzano", "Esta combinación de manzano y número ya existe").
		WithField("numero", "Esta combinación de manzano y número ya existe")
}

// CheckPlanNombreLibre validates plan name uniqueness, excluding the
// candidate's own record on update.
func CheckPlanNombreLibre(existente *entities.PlanFinanciamiento, candidatoID, nombre string) *pkg.AppError {
	if existente == nil || existente.ID == candidatoID {
		return nil
	}
	return pkg.NewConflict(fmt.Sprintf("Ya existe un plan de financiamiento con el nombre %q", nombre)).
		WithField("nombre", "Este nombre ya está en uso")
}

// CheckPlanActivo validates that a financiamiento targets an active plan.
func CheckPlanActivo(plan entities.PlanFinanciamiento) *pkg.AppError {
	if plan.Activo {
		return nil
	}
	return pkg.NewPreconditionFailed(fmt.Sprintf("El plan %q no está activo", plan.Nombre)).
		WithField("planFinanciamientoId", "Plan de financiamiento no activo")
}

// CheckFinanciamientoUnico validates the (lote, plan) pair uniqueness.
// existente is the financiamiento already bound to that pair, or nil.
func CheckFinanciamientoUnico(existente *entities.FinanciamientoLote, loteNombre, planNombre string) *pkg.AppError {
	if existente == nil {
		return nil
	}
	msg := fmt.Sprintf("Ya existe un financiamiento del lote %q con el plan %q", loteNombre, planNombre)
	return pkg.NewConflict(msg).
		WithField("planFinanciamientoId", "Esta combinación ya existe")
}

// CheckCuotaInicial validates that the computed down payment does not exceed
// the lot's cash price. The boundary is inclusive: a down payment equal to
// the cash price is a valid all-cash quote.
func CheckCuotaInicial(cuotaInicial, precioContado float64) *pkg.AppError {
	if cuotaInicial <= precioContado {
		return nil
	}
	msg := fmt.Sprintf("La cuota inicial ($%.2f) no puede ser mayor al precio de contado del lote ($%.2f)",
		cuotaInicial, precioContado)
	return pkg.NewPreconditionFailed(msg).
		WithField("planFinanciamientoId", "Cuota inicial mayor al precio de contado")
}

// CheckRangoValorCuotaInicial validates the down-payment value range for its
// kind. Percentage plans must keep the value within [0,100]; fixed amounts
// only need to be non-negative.
func CheckRangoValorCuotaInicial(tipo entities.TipoCuotaInicial, valor float64) *pkg.AppError {
	if valor < 0 {
		return pkg.NewInvalidArgument("El valor de cuota inicial no puede ser negativo").
			WithField("valorCuotaInicial", "El valor de cuota inicial no puede ser negativo")
	}
	if tipo == entities.TipoCuotaInicialPorcentaje && valor > 100 {
		return pkg.NewInvalidArgument("El porcentaje de cuota inicial debe estar entre 0 y 100").
			WithField("valorCuotaInicial", "El porcentaje de cuota inicial debe estar entre 0 y 100")
	}
	return nil
}

// CheckUrbanizacionSinLotes guards urbanizacion deletion behind its lot count.
func CheckUrbanizacionSinLotes(nombre string, lotes int) *pkg.AppError {
	if lotes == 0 {
		return nil
	}
	msg := fmt.Sprintf("No se puede eliminar la urbanización %q porque tiene %d lote(s) asociado(s)", nombre, lotes)
	return pkg.NewConflict(msg).
		WithField("lotes", fmt.Sprintf("Elimine primero los %d lote(s) asociados", lotes))
}

// CheckPlanSinFinanciamientos guards plan deletion behind its financiamiento
// count.
func CheckPlanSinFinanciamientos(nombre string, financiamientos int) *pkg.AppError {
	if financiamientos == 0 {
		return nil
	}
	msg := fmt.Sprintf("No se puede eliminar el plan %q porque tiene %d financiamiento(s) asociado(s)", nombre, financiamientos)
	return pkg.NewConflict(msg)
}
