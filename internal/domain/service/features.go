package service

import (
	"math"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
)

// FeatureVector holds the numeric features derived for one order, keyed by
// canonical column name. Missing values are NaN and propagate as missing
// through scaling and prediction; the pipeline never substitutes defaults.
type FeatureVector map[string]float64

// baseNumericFeatures seeds a vector with the raw numeric attributes that
// pass through to the model unchanged.
func baseNumericFeatures(o model.Order) FeatureVector {
	return FeatureVector{
		"payment_sequential":   intFeature(o.PaymentSequential),
		"payment_installments": intFeature(o.PaymentInstallments),
		"payment_value":        floatFeature(o.PaymentValue),
		"order_item_id":        intFeature(o.OrderItemID),
		"price":                floatFeature(o.Price),
		"freight_value":        floatFeature(o.FreightValue),
		"product_photos_qty":   intFeature(o.ProductPhotosQty),
		"product_weight_g":     floatFeature(o.ProductWeightG),
	}
}

func floatFeature(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func intFeature(v *int) float64 {
	if v == nil {
		return math.NaN()
	}
	return float64(*v)
}
