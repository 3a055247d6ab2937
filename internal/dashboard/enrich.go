package dashboard

import (
	"github.com/goldrock/minelines/internal/sheet"
)

// Enrich computes the derived economics for a record and appends them as
// numeric fields. A missing source column behaves exactly like an
// unparseable cell - it contributes zero. Re-running Enrich recomputes from
// the source columns, so the derived values are stable across calls.
func Enrich(r *sheet.Record) {
	volume := number(r, FieldMaterialMoved)
	grams := number(r, FieldGoldGrams)
	price := number(r, FieldGoldPrice)
	diesel := number(r, FieldDieselCost)
	labour := number(r, FieldLabourCost)
	other := number(r, FieldOtherCost)

	avgGrade := 0.0
	if volume > 0 {
		avgGrade = grams / volume
	}

	revenue := grams * price
	totalCost := diesel + labour + other
	profit := revenue - totalCost

	r.SetNumber(FieldAvgGrade, roundTo(avgGrade, 3))
	r.SetNumber(FieldRevenue, roundTo(revenue, 2))
	r.SetNumber(FieldTotalCost, roundTo(totalCost, 2))
	r.SetNumber(FieldProfit, roundTo(profit, 2))
}

// EnrichAll enriches every record in place.
func EnrichAll(records []*sheet.Record) {
	for _, r := range records {
		Enrich(r)
	}
}

func number(r *sheet.Record, field string) float64 {
	v, _ := r.Get(field)

	return toNumber(v)
}
