package model

import "fmt"

// Order carries the raw attributes of one e-commerce order as received at
// the inference boundary. Optional fields are pointers: nil means the value
// was absent in the source record and propagates as missing through the
// feature pipeline rather than being defaulted.
type Order struct {
	OrderPurchaseTimestamp     *string `json:"order_purchase_timestamp"`
	OrderApprovedAt            *string `json:"order_approved_at"`
	OrderDeliveredCarrierDate  *string `json:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *string `json:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate *string `json:"order_estimated_delivery_date"`
	ShippingLimitDate          *string `json:"shipping_limit_date"`

	PaymentSequential   *int     `json:"payment_sequential"`
	PaymentType         *string  `json:"payment_type"`
	PaymentInstallments *int     `json:"payment_installments"`
	PaymentValue        *float64 `json:"payment_value"`

	CustomerState *string `json:"customer_state"`
	SellerState   *string `json:"seller_state"`

	OrderItemID  *int     `json:"order_item_id"`
	Price        *float64 `json:"price"`
	FreightValue *float64 `json:"freight_value"`

	ProductCategoryName *string  `json:"product_category_name"`
	ProductPhotosQty    *int     `json:"product_photos_qty"`
	ProductWeightG      *float64 `json:"product_weight_g"`
	ProductLengthCM     *float64 `json:"product_length_cm"`
	ProductHeightCM     *float64 `json:"product_height_cm"`
	ProductWidthCM      *float64 `json:"product_width_cm"`
}

// Validate checks that the fields the trained model cannot do without are
// present. Timestamps other than the purchase anchor may be absent; their
// deltas propagate as missing.
func (o Order) Validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"order_purchase_timestamp", o.OrderPurchaseTimestamp != nil && *o.OrderPurchaseTimestamp != ""},
		{"payment_value", o.PaymentValue != nil},
		{"price", o.Price != nil},
		{"freight_value", o.FreightValue != nil},
		{"product_weight_g", o.ProductWeightG != nil},
		{"product_length_cm", o.ProductLengthCM != nil},
		{"product_height_cm", o.ProductHeightCM != nil},
		{"product_width_cm", o.ProductWidthCM != nil},
	}

	for _, f := range required {
		if !f.ok {
			return fmt.Errorf("field %s is required", f.name)
		}
	}
	return nil
}
