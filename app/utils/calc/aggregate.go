package calc

import (
	"github.com/sathyamr/go-cart/app/models"
	"github.com/shopspring/decimal"
)

var gramsPerKg = decimal.NewFromInt(1000)

// Totals holds the derived aggregate fields of a cart.
type Totals struct {
	SubTotal      decimal.Decimal
	CartItemsQty  int
	TotalWeightKg decimal.Decimal
}

// Recompute derives cart totals from the current item list. It is pure and
// total: an empty list yields all zeros, and absent numeric fields on an item
// are zero-valued decimals, never an error.
func Recompute(items []models.CartItem) Totals {
	var subTotal, weightGrams decimal.Decimal

	for _, item := range items {
		subTotal = subTotal.Add(item.TotalPrice)
		weightGrams = weightGrams.Add(item.TotalWeightGrams)
	}

	return Totals{
		SubTotal:      subTotal,
		CartItemsQty:  len(items),
		TotalWeightKg: weightGrams.Div(gramsPerKg).Round(2),
	}
}

// LineTotals scales a product's unit price and weight by quantity.
func LineTotals(price, weightGrams decimal.Decimal, qty int) (totalPrice, totalWeightGrams decimal.Decimal) {
	q := decimal.NewFromInt(int64(qty))
	return price.Mul(q), weightGrams.Mul(q)
}
