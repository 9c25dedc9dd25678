package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

// CustomerRepository persists customers. Onboard runs the whole four-step
// onboarding sequence (resolve country, resolve city, create address, create
// customer) inside a single database transaction; implementations must
// guarantee that a failure at any step leaves no rows behind.
type CustomerRepository interface {
	Onboard(ctx context.Context, input *OnboardingInput) (*Customer, error)

	CountPerStore(ctx context.Context) ([]StoreCustomerCount, error)

	FindByStore(ctx context.Context, storeID int16) ([]StoreCustomer, error)

	FindDetails(ctx context.Context, customerID int32) (*CustomerDetails, error)
}
