package finance

import (
	"math"
	"testing"

	"terranova_lotes/internal/domain/entities"
)

const tolerance = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCashPrice(t *testing.T) {
	if got := CashPrice(250, 150); !closeTo(got, 37500) {
		t.Fatalf("expected 37500, got %v", got)
	}
	if got := CashPrice(0.5, 1000); !closeTo(got, 500) {
		t.Fatalf("expected 500, got %v", got)
	}
}

func TestDownPayment(t *testing.T) {
	t.Run("porcentaje", func(t *testing.T) {
		if got := DownPayment(37500, entities.TipoCuotaInicialPorcentaje, 20); !closeTo(got, 7500) {
			t.Fatalf("expected 7500, got %v", got)
		}
	})

	t.Run("monto fijo", func(t *testing.T) {
		if got := DownPayment(37500, entities.TipoCuotaInicialMontoFijo, 5000); !closeTo(got, 5000) {
			t.Fatalf("expected 5000, got %v", got)
		}
	})

	t.Run("porcentaje cero", func(t *testing.T) {
		if got := DownPayment(37500, entities.TipoCuotaInicialPorcentaje, 0); !closeTo(got, 0) {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestComputeQuote_PercentagePlan(t *testing.T) {
	// Lote 250 m2 at 150/m2, plan 20% down, 12% annual, 12 cuotas.
	precioContado := CashPrice(250, 150)
	cuotaInicial := DownPayment(precioContado, entities.TipoCuotaInicialPorcentaje, 20)

	q := ComputeQuote(precioContado, cuotaInicial, 12, 12)

	if !closeTo(q.CuotaInicial, 7500) {
		t.Fatalf("cuota inicial: expected 7500, got %v", q.CuotaInicial)
	}
	if !closeTo(q.SaldoFinanciar, 30000) {
		t.Fatalf("saldo: expected 30000, got %v", q.SaldoFinanciar)
	}
	if !closeTo(q.InteresTotal, 3600) {
		t.Fatalf("interes: expected 3600, got %v", q.InteresTotal)
	}
	if !closeTo(q.CuotaMensual, 2800) {
		t.Fatalf("cuota mensual: expected 2800, got %v", q.CuotaMensual)
	}
	if !closeTo(q.PrecioTotalCredito, 37500) {
		t.Fatalf("precio total: expected 37500, got %v", q.PrecioTotalCredito)
	}
}

func TestComputeQuote_FixedAmountPlan(t *testing.T) {
	// Same lot, plan with fixed 5000 down, 10% annual, 24 cuotas.
	precioContado := CashPrice(250, 150)
	cuotaInicial := DownPayment(precioContado, entities.TipoCuotaInicialMontoFijo, 5000)

	q := ComputeQuote(precioContado, cuotaInicial, 10, 24)

	if !closeTo(q.SaldoFinanciar, 32500) {
		t.Fatalf("saldo: expected 32500, got %v", q.SaldoFinanciar)
	}
	if !closeTo(q.InteresTotal, 3250) {
		t.Fatalf("interes: expected 3250, got %v", q.InteresTotal)
	}
	if !closeTo(q.CuotaMensual, 35750.0/24) {
		t.Fatalf("cuota mensual: expected %v, got %v", 35750.0/24, q.CuotaMensual)
	}
	if !closeTo(q.PrecioTotalCredito, 40750) {
		t.Fatalf("precio total: expected 40750, got %v", q.PrecioTotalCredito)
	}
}

func TestComputeQuote_RoundTripIdentity(t *testing.T) {
	// PrecioTotalCredito must equal CuotaMensual*n + CuotaInicial for any input.
	cases := []struct {
		precioContado, cuotaInicial, tasa float64
		cuotas                            int
	}{
		{37500, 7500, 12, 12},
		{37500, 5000, 10, 24},
		{99999.99, 0, 0, 1},
		{1234.56, 1234.56, 50, 7},
		{80000, 12000, 7.5, 36},
	}
	for _, c := range cases {
		q := ComputeQuote(c.precioContado, c.cuotaInicial, c.tasa, c.cuotas)
		want := q.CuotaMensual*float64(c.cuotas) + q.CuotaInicial
		if !closeTo(q.PrecioTotalCredito, want) {
			t.Fatalf("identity broken for %+v: got %v want %v", c, q.PrecioTotalCredito, want)
		}
	}
}

func TestComputeQuote_FullDownPayment(t *testing.T) {
	// Down payment equal to the cash price leaves nothing to finance.
	q := ComputeQuote(37500, 37500, 12, 12)
	if !closeTo(q.SaldoFinanciar, 0) || !closeTo(q.InteresTotal, 0) || !closeTo(q.CuotaMensual, 0) {
		t.Fatalf("expected zero balance quote, got %+v", q)
	}
	if !closeTo(q.PrecioTotalCredito, 37500) {
		t.Fatalf("precio total: expected 37500, got %v", q.PrecioTotalCredito)
	}
}
