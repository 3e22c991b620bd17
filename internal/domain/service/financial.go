package service

import (
	"math"
	"sort"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
)

// DeriveProductFeatures computes the volumetric and monetary derived fields
// for one order. The three dimension fields are consumed here and never
// appear in the output vector.
//
// freight_percentage with price == 0 is defined as missing (NaN) rather
// than the infinity the raw division would produce; the model was trained
// on strictly positive prices and a zero-price row is a data-quality
// condition, not a signal.
func DeriveProductFeatures(o model.Order, fv FeatureVector) {
	length := floatFeature(o.ProductLengthCM)
	height := floatFeature(o.ProductHeightCM)
	width := floatFeature(o.ProductWidthCM)
	fv["product_cubic_volume"] = length * height * width

	price := floatFeature(o.Price)
	freight := floatFeature(o.FreightValue)

	if price == 0 {
		fv["freight_percentage"] = math.NaN()
	} else {
		fv["freight_percentage"] = freight / price
	}
	fv["net_revenue"] = price - freight
	fv["revenue_per_order"] = price + freight
}

// ApplyHighFreightFlag is the second pass of the financial derivation: it
// computes the batch median of freight_percentage and sets is_high_freight
// on every row. The flag depends on the whole batch's distribution, so for
// a single-row batch the median degenerates to the row's own value and the
// flag is always false. Rows with a missing freight percentage are excluded
// from the median and never flagged.
func ApplyHighFreightFlag(rows []FeatureVector) {
	med := medianFreightPercentage(rows)

	for _, fv := range rows {
		fp := fv["freight_percentage"]
		if !math.IsNaN(fp) && !math.IsNaN(med) && fp > med {
			fv["is_high_freight"] = 1
		} else {
			fv["is_high_freight"] = 0
		}
	}
}

func medianFreightPercentage(rows []FeatureVector) float64 {
	vals := make([]float64, 0, len(rows))
	for _, fv := range rows {
		if fp := fv["freight_percentage"]; !math.IsNaN(fp) {
			vals = append(vals, fp)
		}
	}
	if len(vals) == 0 {
		return math.NaN()
	}

	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}
