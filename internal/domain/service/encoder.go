package service

import "github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"

// categoricalFields pairs each nominal source field with the column-name
// prefix its trained indicator columns carry.
var categoricalFields = []struct {
	prefix string
	value  func(model.Order) *string
}{
	{"payment_type_", func(o model.Order) *string { return o.PaymentType }},
	{"customer_state_", func(o model.Order) *string { return o.CustomerState }},
	{"seller_state_", func(o model.Order) *string { return o.SellerState }},
	{"product_category_name_", func(o model.Order) *string { return o.ProductCategoryName }},
}

// EncodeCategoricals maps the order's four nominal fields onto the trained
// indicator vocabulary. The result holds the indicator columns that are
// true for this order; every other indicator is false. A value unseen at
// training time sets nothing and raises no error; the unseen count is
// returned so the boundary can surface it as a metric.
func EncodeCategoricals(o model.Order, vocab Vocabulary) (map[string]bool, int) {
	indicators := make(map[string]bool, len(categoricalFields))
	unseen := 0

	for _, f := range categoricalFields {
		v := f.value(o)
		if v == nil || *v == "" {
			continue
		}
		name := f.prefix + *v
		if vocab.Contains(name) {
			indicators[name] = true
		} else {
			unseen++
		}
	}

	return indicators, unseen
}
