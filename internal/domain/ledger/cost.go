package ledger

import "github.com/shopspring/decimal"

// AverageCost devuelve el costo promedio ponderado tras una entrada.
// Nuevo = ((saldo * costo) + (cantEntrada * precioEntrada)) / (saldo + cantEntrada)
func AverageCost(stock int64, cost decimal.Decimal, qtyIn int64, priceIn decimal.Decimal) decimal.Decimal {
	sum := stock + qtyIn
	if sum <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(stock).Mul(cost).Add(decimal.NewFromInt(qtyIn).Mul(priceIn))
	return num.Div(decimal.NewFromInt(sum))
}
