package testutil

import (
	"context"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
)

// Ptr returns a pointer to v, for building Order fixtures inline.
func Ptr[T any](v T) *T {
	return &v
}

// CanonicalColumns returns a small canonical column list shaped like the
// trained artifact: 21 numeric columns followed by one-hot indicator names.
func CanonicalColumns() []string {
	return []string{
		"payment_sequential",
		"payment_installments",
		"payment_value",
		"order_item_id",
		"price",
		"freight_value",
		"product_photos_qty",
		"product_weight_g",
		"delta_approved",
		"delta_estimated_delivery",
		"delta_shipping_limit",
		"delta_delivered_customer",
		"delta_delivered_carrier",
		"purchase_year",
		"purchase_month",
		"purchase_day",
		"product_cubic_volume",
		"freight_percentage",
		"net_revenue",
		"revenue_per_order",
		"is_high_freight",

		"payment_type_credit_card",
		"payment_type_boleto",
		"payment_type_voucher",
		"customer_state_SP",
		"customer_state_RJ",
		"customer_state_MG",
		"seller_state_SP",
		"seller_state_PR",
		"product_category_name_cama_mesa_banho",
		"product_category_name_moveis_decoracao",
	}
}

// ValidOrder returns a fully-populated order record.
func ValidOrder() model.Order {
	return model.Order{
		OrderPurchaseTimestamp:     Ptr("2018-03-01 10:30:00"),
		OrderApprovedAt:            Ptr("2018-03-02 11:00:00"),
		OrderDeliveredCarrierDate:  Ptr("2018-03-05 14:00:00"),
		OrderDeliveredCustomerDate: Ptr("2018-03-10 18:45:00"),
		OrderEstimatedDeliveryDate: Ptr("2018-03-20 00:00:00"),
		ShippingLimitDate:          Ptr("2018-03-07 10:30:00"),
		PaymentSequential:          Ptr(1),
		PaymentType:                Ptr("credit_card"),
		PaymentInstallments:        Ptr(3),
		PaymentValue:               Ptr(110.0),
		CustomerState:              Ptr("SP"),
		SellerState:                Ptr("SP"),
		OrderItemID:                Ptr(1),
		Price:                      Ptr(100.0),
		FreightValue:               Ptr(10.0),
		ProductCategoryName:        Ptr("cama_mesa_banho"),
		ProductPhotosQty:           Ptr(4),
		ProductWeightG:             Ptr(750.0),
		ProductLengthCM:            Ptr(30.0),
		ProductHeightCM:            Ptr(10.0),
		ProductWidthCM:             Ptr(20.0),
	}
}

// StubClassifier implements port.Classifier, predicting a fixed class for
// every row.
type StubClassifier struct {
	Class int
	Name  string
	Err   error
}

func (c *StubClassifier) Predict(rows [][]float64) ([]int, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	classes := make([]int, len(rows))
	for i := range classes {
		classes[i] = c.Class
	}
	return classes, nil
}

func (c *StubClassifier) TypeName() string {
	if c.Name == "" {
		return "StubClassifier"
	}
	return c.Name
}

// IdentityScaler implements port.Scaler, returning rows unchanged.
type IdentityScaler struct{}

func (IdentityScaler) Transform(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out, nil
}

func (IdentityScaler) TypeName() string { return "IdentityScaler" }

// Artifacts returns an artifact triple built on the canonical fixture
// columns, an identity scaler, and a classifier predicting the given class.
func Artifacts(class int) service.Artifacts {
	columns := CanonicalColumns()
	return service.Artifacts{
		Classifier: &StubClassifier{Class: class},
		Scaler:     IdentityScaler{},
		Columns:    columns,
		Vocabulary: service.NewVocabulary(columns[service.NumericColumnCount:]),
	}
}

// StaticArtifactSource implements service.ArtifactSource with a fixed value.
type StaticArtifactSource struct {
	Arts service.Artifacts
	Err  error
}

func (s StaticArtifactSource) Get(context.Context) (service.Artifacts, error) {
	return s.Arts, s.Err
}
