package calc

import "github.com/shopspring/decimal"

// Shipping tariff: a fixed two-dimensional banded table. Rows are distance
// bands, columns are weight bands. Weight bands are upper-inclusive
// ([0,2], (2,5], (5,20], (20,∞)); distance bands are upper-exclusive up to
// 500 ([0,5), [5,20), [20,50), [50,500)), then [500,800] inclusive and
// (800,∞). A value on a shared boundary therefore lands in the lower band.

var weightBandMax = []decimal.Decimal{
	decimal.NewFromInt(2),
	decimal.NewFromInt(5),
	decimal.NewFromInt(20),
}

var distanceBandMax = []decimal.Decimal{
	decimal.NewFromInt(5),
	decimal.NewFromInt(20),
	decimal.NewFromInt(50),
	decimal.NewFromInt(500),
}

var maxInclusiveDistance = decimal.NewFromInt(800)

var shippingCharges = [6][4]int64{
	{12, 14, 16, 21},
	{15, 18, 25, 35},
	{20, 24, 30, 50},
	{50, 55, 80, 90},
	{100, 110, 130, 150},
	{220, 250, 270, 300},
}

func weightBand(weightKg decimal.Decimal) int {
	for i, max := range weightBandMax {
		if weightKg.LessThanOrEqual(max) {
			return i
		}
	}
	return len(weightBandMax)
}

func distanceBand(distanceKm decimal.Decimal) int {
	for i, max := range distanceBandMax {
		if distanceKm.LessThan(max) {
			return i
		}
	}
	if distanceKm.LessThanOrEqual(maxInclusiveDistance) {
		return len(distanceBandMax)
	}
	return len(distanceBandMax) + 1
}

// ShippingCharge maps a cart's total weight and a delivery distance to the
// tariff charge. Total over all non-negative inputs; the last weight column
// and distance row are open-ended catch-alls.
func ShippingCharge(totalWeightKg, distanceKm decimal.Decimal) int64 {
	return shippingCharges[distanceBand(distanceKm)][weightBand(totalWeightKg)]
}

// GrandTotal is the payable checkout amount: subtotal plus shipping charge.
func GrandTotal(subTotal decimal.Decimal, shippingCharge int64) decimal.Decimal {
	return subTotal.Add(decimal.NewFromInt(shippingCharge))
}
