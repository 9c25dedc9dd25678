package event

import (
	"context"
	"time"
)

type CustomerOnboardedPayload struct {
	CustomerID int32     `json:"customerId"`
	StoreID    int16     `json:"storeId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      *string   `json:"email,omitempty"`
	AddressID  int32     `json:"addressId"`
	ActiveBool bool      `json:"activebool"`
	CreateDate time.Time `json:"createDate"`
}

type CustomerOnboardedEvent struct {
	Timestamp time.Time                `json:"timestamp"`
	Payload   CustomerOnboardedPayload `json:"payload"`
}

type EventPublisher interface {
	PublishCustomerOnboarded(ctx context.Context, event CustomerOnboardedEvent) error
}
