package valueobject

import "fmt"

// Label is an immutable value object representing the predicted satisfaction
// outcome of an order.
type Label struct {
	value string
}

var (
	LabelSatisfied    = Label{value: "Satisfeito"}
	LabelDissatisfied = Label{value: "Insatisfeito"}
)

// LabelFromClass maps a raw classifier output to a Label. Class 1 means the
// customer is predicted to rate the order 4 or higher; any other value maps
// to the dissatisfied label.
func LabelFromClass(class int) Label {
	if class == 1 {
		return LabelSatisfied
	}
	return LabelDissatisfied
}

// LabelFromString reconstructs a Label from its string representation.
func LabelFromString(s string) (Label, error) {
	switch s {
	case "Satisfeito":
		return LabelSatisfied, nil
	case "Insatisfeito":
		return LabelDissatisfied, nil
	default:
		return Label{}, fmt.Errorf("invalid satisfaction label: %s", s)
	}
}

// String returns the string representation.
func (l Label) String() string {
	return l.value
}

// IsZero returns true if the Label has not been set.
func (l Label) IsZero() bool {
	return l.value == ""
}

// Equal checks equality with another Label.
func (l Label) Equal(other Label) bool {
	return l.value == other.value
}
