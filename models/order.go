package models

import (
	"errors"
	"strings"
)

type OrderStatus string

const (
	// Order statuses (booking flow on the store backend)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusAccepted   OrderStatus = "accepted"   // Confirmed by the shop
	OrderStatusDispatched OrderStatus = "dispatched" // Handed to the courier
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the phone
)

var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusAccepted:   1,
	OrderStatusDispatched: 2,
	OrderStatusDelivered:  3,
}

// ParseOrderStatus maps a status string to the enum, case-insensitively.
// The backend has historically returned capitalized statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusAccepted):
		return OrderStatusAccepted, nil
	case string(OrderStatusDispatched):
		return OrderStatusDispatched, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CanTransitionTo enforces the order lifecycle: pending → accepted →
// dispatched → delivered, one step at a time, never backwards.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

type OrderItem struct {
	PhoneID  string `json:"phone_id"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Order is owned by the store backend; we only ever read it.
type Order struct {
	ID           string      `json:"id"`
	ClientName   string      `json:"client_name"`
	ClientMobile string      `json:"client_mobile"`
	Items        []OrderItem `json:"items"`
	Total        int         `json:"total"`
	Status       OrderStatus `json:"status"`
	Date         string      `json:"date"`
}
