package dto

import (
	"fmt"
	"strings"
	"time"

	"dvdstore/internal/domain/customer"
)

type CreateCustomerRequest struct {
	StoreID    int16                `json:"storeId"`
	FirstName  string               `json:"firstName"`
	LastName   string               `json:"lastName"`
	Email      *string              `json:"email,omitempty"`
	ActiveBool bool                 `json:"activebool"`
	Address    CreateAddressRequest `json:"address"`
}

type CreateAddressRequest struct {
	Address    string  `json:"address"`
	Address2   *string `json:"address2,omitempty"`
	District   string  `json:"district"`
	PostalCode *string `json:"postalCode,omitempty"`
	Phone      string  `json:"phone"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
}

func (r *CreateCustomerRequest) Validate() error {
	if r.StoreID <= 0 {
		return fmt.Errorf("storeId must be a positive number")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("lastName cannot be empty")
	}
	if strings.TrimSpace(r.Address.Address) == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if strings.TrimSpace(r.Address.District) == "" {
		return fmt.Errorf("district cannot be empty")
	}
	if strings.TrimSpace(r.Address.Phone) == "" {
		return fmt.Errorf("phone cannot be empty")
	}
	if strings.TrimSpace(r.Address.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if strings.TrimSpace(r.Address.Country) == "" {
		return fmt.Errorf("country cannot be empty")
	}
	return nil
}

// ToOnboardingInput maps the wire payload onto the domain input.
func (r *CreateCustomerRequest) ToOnboardingInput() *customer.OnboardingInput {
	return &customer.OnboardingInput{
		StoreID:    r.StoreID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		ActiveBool: r.ActiveBool,
		Address: customer.AddressInput{
			Address:    r.Address.Address,
			Address2:   r.Address.Address2,
			District:   r.Address.District,
			PostalCode: r.Address.PostalCode,
			Phone:      r.Address.Phone,
			City:       r.Address.City,
			Country:    r.Address.Country,
		},
	}
}

type CustomerResponse struct {
	CustomerID int32     `json:"customerId"`
	StoreID    int16     `json:"storeId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      *string   `json:"email,omitempty"`
	AddressID  int32     `json:"addressId"`
	ActiveBool bool      `json:"activebool"`
	Active     *int32    `json:"active,omitempty"`
	CreateDate time.Time `json:"createDate"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		CustomerID: cust.CustomerID,
		StoreID:    cust.StoreID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Email:      cust.Email,
		AddressID:  cust.AddressID,
		ActiveBool: cust.ActiveBool,
		Active:     cust.Active,
		CreateDate: cust.CreateDate,
	}
}
