package taxation

import "github.com/shopspring/decimal"

// Liability adds the flat gains tax to the slab tax and applies the cess to the combined amount.
func Liability(slabTax, gainsTax, cessRate decimal.Decimal) (beforeCess, cess, total decimal.Decimal) {
	beforeCess = slabTax.Add(gainsTax)
	cess = beforeCess.Mul(cessRate)
	total = beforeCess.Add(cess)
	return beforeCess, cess, total
}
