// Package finance holds the pure financing arithmetic. No I/O, no rounding:
// results are plain float64 values rounded only at presentation time, so that
// rounding error never compounds across the dependent quote fields.
package finance

import "terranova_lotes/internal/domain/entities"

// CashPrice computes a lot's cash price from its surface and unit price.
func CashPrice(superficieM2, precioM2 float64) float64 {
	return superficieM2 * precioM2
}

// DownPayment derives the down payment a plan demands for a given cash price.
// For TipoCuotaInicialPorcentaje, valor is a percentage of precioContado;
// for TipoCuotaInicialMontoFijo, valor is the amount itself.
func DownPayment(precioContado float64, tipo entities.TipoCuotaInicial, valor float64) float64 {
	if tipo == entities.TipoCuotaInicialPorcentaje {
		return precioContado * (valor / 100)
	}
	return valor
}

// Quote is the aggregate financing quote for one lot under one plan.
type Quote struct {
	CuotaInicial       float64
	SaldoFinanciar     float64
	InteresTotal       float64
	CuotaMensual       float64
	PrecioTotalCredito float64
}

// ComputeQuote derives the full quote from a cash price and an already computed
// down payment.
//
// cantidadCuotas > 0 is a caller precondition; callers validate the plan before
// quoting, so a zero value here is a programming error, not an input error.
func ComputeQuote(precioContado, cuotaInicial, porcentajeAnual float64, cantidadCuotas int) Quote {
	saldo := precioContado - cuotaInicial
	interes := saldo * (porcentajeAnual / 100)
	cuotaMensual := (saldo + interes) / float64(cantidadCuotas)
	return Quote{
		CuotaInicial:       cuotaInicial,
		SaldoFinanciar:     saldo,
		InteresTotal:       interes,
		CuotaMensual:       cuotaMensual,
		PrecioTotalCredito: cuotaMensual*float64(cantidadCuotas) + cuotaInicial,
	}
}
