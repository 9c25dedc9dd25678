package customer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) Onboard(ctx context.Context, input *OnboardingInput) (*Customer, error) {
	ret := _m.Called(ctx, input)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, *OnboardingInput) *Customer); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *OnboardingInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerRepository) CountPerStore(ctx context.Context) ([]StoreCustomerCount, error) {
	ret := _m.Called(ctx)

	var r0 []StoreCustomerCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]StoreCustomerCount)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindByStore(ctx context.Context, storeID int16) ([]StoreCustomer, error) {
	ret := _m.Called(ctx, storeID)

	var r0 []StoreCustomer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]StoreCustomer)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindDetails(ctx context.Context, customerID int32) (*CustomerDetails, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *CustomerDetails
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*CustomerDetails)
	}

	return r0, ret.Error(1)
}
