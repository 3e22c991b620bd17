package service

import (
	"fmt"
	"math"
	"time"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
)

// timestampLayouts are the accepted ISO-8601 shapes, tried in order. The
// Olist exports use "2006-01-02 15:04:05".
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// deltaFields maps each derived delta column to the raw timestamp it is
// measured against, with the purchase timestamp as the anchor.
var deltaFields = []struct {
	column string
	field  string
	value  func(model.Order) *string
}{
	{"delta_approved", "order_approved_at", func(o model.Order) *string { return o.OrderApprovedAt }},
	{"delta_estimated_delivery", "order_estimated_delivery_date", func(o model.Order) *string { return o.OrderEstimatedDeliveryDate }},
	{"delta_shipping_limit", "shipping_limit_date", func(o model.Order) *string { return o.ShippingLimitDate }},
	{"delta_delivered_customer", "order_delivered_customer_date", func(o model.Order) *string { return o.OrderDeliveredCustomerDate }},
	{"delta_delivered_carrier", "order_delivered_carrier_date", func(o model.Order) *string { return o.OrderDeliveredCarrierDate }},
}

// DeriveDatetimeFeatures replaces the six raw timestamp fields with five
// whole-day deltas against the purchase timestamp plus the purchase
// year/month/day calendar components. Absent timestamps yield missing
// deltas; a present but unparsable timestamp is an ErrDateParse. The
// purchase timestamp itself is the required anchor.
func DeriveDatetimeFeatures(o model.Order, fv FeatureVector) error {
	purchase, ok, err := parseTimestamp("order_purchase_timestamp", o.OrderPurchaseTimestamp)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: order_purchase_timestamp is required", ErrDateParse)
	}

	for _, d := range deltaFields {
		other, ok, err := parseTimestamp(d.field, d.value(o))
		if err != nil {
			return err
		}
		if !ok {
			fv[d.column] = math.NaN()
			continue
		}
		fv[d.column] = dayDelta(purchase, other)
	}

	fv["purchase_year"] = float64(purchase.Year())
	fv["purchase_month"] = float64(purchase.Month())
	fv["purchase_day"] = float64(purchase.Day())

	return nil
}

// dayDelta is the integer number of whole days between the two instants,
// elapsed seconds divided by 86400 and truncated toward zero. Negative when
// other precedes the purchase anchor; no clamping.
func dayDelta(purchase, other time.Time) float64 {
	return math.Trunc(other.Sub(purchase).Seconds() / 86400)
}

// parseTimestamp parses a nullable raw timestamp. The second return value
// reports presence: (zero, false, nil) for absent values.
func parseTimestamp(field string, raw *string) (time.Time, bool, error) {
	if raw == nil || *raw == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: field %s: %q", ErrDateParse, field, *raw)
}
