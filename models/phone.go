package models

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
)

// Phone is a catalog listing. IDs are assigned by the remote store backend
// and are opaque to us. Prices are integer minor currency units. A Phone held
// in a cart line is a snapshot taken at add time and can go stale against the
// backend.
type Phone struct {
	ID               string            `json:"id"`
	Brand            string            `json:"brand"`
	Model            string            `json:"model"`
	Storage          string            `json:"storage"`
	RAM              string            `json:"ram"`
	Condition        Condition         `json:"condition"`
	Price            int               `json:"price"`
	OriginalPrice    int               `json:"original_price"`
	Images           []string          `json:"images"`
	Stock            int               `json:"stock"`
	Warranty         string            `json:"warranty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	ConditionDetails string            `json:"condition_details,omitempty"`
}
