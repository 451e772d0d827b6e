package models

// CartLine pairs a phone snapshot with a quantity. The cart holds at most one
// line per phone id; quantity is never stored below 1.
type CartLine struct {
	Phone    Phone `json:"phone"`
	Quantity int   `json:"quantity"`
}

func (l CartLine) LineTotal() int {
	return l.Phone.Price * l.Quantity
}
