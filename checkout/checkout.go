package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/karthikram1909/refurbished-store/models"
)

var (
	ErrNoIdentity = errors.New("no identity for checkout")
	ErrEmptyCart  = errors.New("cart is empty")
)

// The backend assigns 24-character ids; anything else in the cart is locally
// seeded demo data the backend would reject.
const gatewayIDLength = 24

func IsGatewayID(id string) bool {
	return len(id) == gatewayIDLength
}

// Gateway is the one call checkout needs from the store client.
type Gateway interface {
	CreateOrder(ctx context.Context, clientName, clientNumber, phoneID string) (models.Order, error)
}

type PlacedUnit struct {
	Ref     string `json:"ref"`
	PhoneID string `json:"phone_id"`
	OrderID string `json:"order_id"`
}

type SkippedLine struct {
	PhoneID  string `json:"phone_id"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

type FailedUnit struct {
	PhoneID string `json:"phone_id"`
	Unit    int    `json:"unit"`
	Error   string `json:"error"`
}

// Report is the aggregated outcome of one checkout attempt. Skipped lines
// and the failing unit are recorded instead of being dropped silently so the
// caller can notify the user.
type Report struct {
	AttemptID string        `json:"attempt_id"`
	Placed    []PlacedUnit  `json:"placed"`
	Skipped   []SkippedLine `json:"skipped,omitempty"`
	Failed    *FailedUnit   `json:"failed,omitempty"`
}

// Succeeded reports whether no submission failed. The caller clears the cart
// only in that case; units placed before a failure are not rolled back.
func (r *Report) Succeeded() bool {
	return r.Failed == nil
}

// Submit books one order per unit of each cart line, strictly in sequence:
// cart order first, then unit order, each request awaited before the next is
// issued. The first failure aborts the rest of the queue. Lines whose phone
// id does not have the backend's 24-character shape are skipped up front.
func Submit(ctx context.Context, gw Gateway, identity *models.Identity, lines []models.CartLine) (*Report, error) {
	if identity == nil {
		return nil, ErrNoIdentity
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	mobile := identity.Mobile
	if mobile == "" {
		mobile = "N/A"
	}

	report := &Report{
		AttemptID: time.Now().Format("20060102150405") + "-" + uuid.NewString(),
	}

	for _, line := range lines {
		if !IsGatewayID(line.Phone.ID) {
			report.Skipped = append(report.Skipped, SkippedLine{
				PhoneID:  line.Phone.ID,
				Quantity: line.Quantity,
				Reason:   "phone id does not match backend id shape",
			})
			continue
		}

		for unit := 1; unit <= line.Quantity; unit++ {
			if err := ctx.Err(); err != nil {
				report.Failed = &FailedUnit{PhoneID: line.Phone.ID, Unit: unit, Error: err.Error()}
				return report, nil
			}
			order, err := gw.CreateOrder(ctx, identity.Name, mobile, line.Phone.ID)
			if err != nil {
				report.Failed = &FailedUnit{PhoneID: line.Phone.ID, Unit: unit, Error: err.Error()}
				return report, nil
			}
			report.Placed = append(report.Placed, PlacedUnit{
				Ref:     uuid.NewString(),
				PhoneID: line.Phone.ID,
				OrderID: order.ID,
			})
		}
	}
	return report, nil
}
