// Package dashboard derives the per-row economics for a mining line
// worksheet and aggregates the rows into the document consumed by the
// dashboard front-end.
package dashboard

// Source columns the derivation reads. The worksheet is assumed to carry
// this fixed column set; anything else is passed through untouched.
const (
	FieldLineID        = "line_id"
	FieldLineName      = "line_name"
	FieldLocation      = "location"
	FieldMaterialMoved = "material_moved_m3"
	FieldGoldGrams     = "gold_grams"
	FieldGoldPrice     = "gold_price_usd_per_g"
	FieldDieselCost    = "diesel_cost_usd"
	FieldLabourCost    = "labour_cost_usd"
	FieldOtherCost     = "other_cost_usd"
)

// Derived fields appended to every record. The names are part of the
// dashboard contract and must not change.
const (
	FieldAvgGrade  = "avg_grade_g_per_m3"
	FieldRevenue   = "revenue_usd"
	FieldTotalCost = "total_cost_usd"
	FieldProfit    = "profit_usd"
)

// UnknownLine is the group key used for records from a worksheet without a
// line_id column.
const UnknownLine = "UNKNOWN"
