package gateway

import (
	"encoding/json"
	"regexp"

	"github.com/karthikram1909/refurbished-store/models"
)

// The backend's phone records are flatter than our catalog model: a single
// "name" string, one image, a sold flag instead of a stock count. The mapping
// here mirrors what the listing page has always derived client-side.

var storagePattern = regexp.MustCompile(`(?i)\d+\s?(GB|TB)`)

type phonePayload struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	IsSold      bool   `json:"isSold"`
	Warranty    string `json:"warranty"`
	Battery     string `json:"battery"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
}

func (p phonePayload) toModel() models.Phone {
	id := p.MongoID
	if id == "" {
		id = p.ID
	}
	brand := p.Brand
	if brand == "" {
		brand = "Unknown"
	}

	condition := models.ConditionGood
	switch models.Condition(p.Condition) {
	case models.ConditionExcellent, models.ConditionGood, models.ConditionFair:
		condition = models.Condition(p.Condition)
	}

	stock := 1
	if p.IsSold {
		stock = 0
	}

	var images []string
	if p.Image != "" {
		images = []string{p.Image}
	}

	phone := models.Phone{
		ID:               id,
		Brand:            brand,
		Model:            p.Name,
		Storage:          storagePattern.FindString(p.Name),
		Condition:        condition,
		Price:            p.Price,
		OriginalPrice:    p.Price,
		Images:           images,
		Stock:            stock,
		Warranty:         p.Warranty,
		ConditionDetails: p.Description,
	}
	if p.Battery != "" {
		phone.Specifications = map[string]string{"battery": p.Battery}
	}
	return phone
}

// phoneListPayload accepts both shapes the backend has served: a paginated
// object `{phones: [...], totalPages: n}` and a bare array.
type phoneListPayload struct {
	Phones     []phonePayload
	TotalPages int
}

func (l *phoneListPayload) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Phones     []phonePayload `json:"phones"`
		TotalPages int            `json:"totalPages"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Phones != nil {
		l.Phones = wrapped.Phones
		l.TotalPages = wrapped.TotalPages
		return nil
	}

	var bare []phonePayload
	if err := json.Unmarshal(data, &bare); err == nil {
		l.Phones = bare
		return nil
	}

	// Unexpected shape: degrade to an empty list rather than failing the
	// whole request.
	l.Phones = nil
	l.TotalPages = 0
	return nil
}

func (l phoneListPayload) toModels() []models.Phone {
	out := make([]models.Phone, 0, len(l.Phones))
	for _, p := range l.Phones {
		out = append(out, p.toModel())
	}
	return out
}

type orderItemPayload struct {
	PhoneID  string `json:"phoneId"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type orderPayload struct {
	MongoID      string             `json:"_id"`
	ID           string             `json:"id"`
	ClientName   string             `json:"clientName"`
	ClientMobile string             `json:"clientMobile"`
	ClientNumber string             `json:"clientNumber"`
	Items        []orderItemPayload `json:"items"`
	PhoneID      string             `json:"phoneId"`
	Price        int                `json:"price"`
	Total        int                `json:"total"`
	Status       string             `json:"status"`
	Date         string             `json:"date"`
	CreatedAt    string             `json:"createdAt"`
}

func (o orderPayload) toModel() models.Order {
	id := o.MongoID
	if id == "" {
		id = o.ID
	}
	mobile := o.ClientMobile
	if mobile == "" {
		mobile = o.ClientNumber
	}
	date := o.Date
	if date == "" {
		date = o.CreatedAt
	}

	items := make([]models.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, models.OrderItem{
			PhoneID:  it.PhoneID,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	// Single-unit bookings carry the phone id at the top level.
	if len(items) == 0 && o.PhoneID != "" {
		items = append(items, models.OrderItem{PhoneID: o.PhoneID, Quantity: 1, Price: o.Price})
	}

	total := o.Total
	if total == 0 {
		for _, it := range items {
			total += it.Price * it.Quantity
		}
	}

	// Statuses arrive in whatever casing the backend felt like; unknown
	// values default to pending rather than erroring a whole listing.
	status, err := models.ParseOrderStatus(o.Status)
	if err != nil {
		status = models.OrderStatusPending
	}

	return models.Order{
		ID:           id,
		ClientName:   o.ClientName,
		ClientMobile: mobile,
		Items:        items,
		Total:        total,
		Status:       status,
		Date:         date,
	}
}

func toOrders(payload []orderPayload) []models.Order {
	out := make([]models.Order, 0, len(payload))
	for _, o := range payload {
		out = append(out, o.toModel())
	}
	return out
}
