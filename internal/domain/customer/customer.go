package customer

import "time"

// Customer mirrors one row of the customer table, including the
// server-assigned columns populated on insert.
type Customer struct {
	CustomerID int32      `json:"customerId"`
	StoreID    int16      `json:"storeId"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      *string    `json:"email,omitempty"`
	AddressID  int32      `json:"addressId"`
	ActiveBool bool       `json:"activebool"`
	Active     *int32     `json:"active,omitempty"`
	CreateDate time.Time  `json:"createDate"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
}

// OnboardingInput is the validated payload for the customer onboarding
// transaction. The address block carries the city and country names that the
// reference resolver turns into identifiers.
type OnboardingInput struct {
	StoreID    int16
	FirstName  string
	LastName   string
	Email      *string
	ActiveBool bool
	Address    AddressInput
}

type AddressInput struct {
	Address    string
	Address2   *string
	District   string
	PostalCode *string
	Phone      string
	City       string
	Country    string
}

type StoreCustomerCount struct {
	Count   int64  `json:"count"`
	Address string `json:"address"`
}

type StoreCustomer struct {
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      *string    `json:"email,omitempty"`
	ActiveBool bool       `json:"activebool"`
	CreateDate time.Time  `json:"createDate"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
}

// CustomerDetails is the customer -> address -> city join used by the
// details endpoint.
type CustomerDetails struct {
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      *string    `json:"email,omitempty"`
	ActiveBool bool       `json:"activebool"`
	CreateDate time.Time  `json:"createDate"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
	Address    string     `json:"address"`
	District   string     `json:"district"`
	Phone      string     `json:"phone"`
	PostalCode *string    `json:"postalCode,omitempty"`
	City       string     `json:"city"`
}
