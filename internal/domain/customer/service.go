package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"dvdstore/internal/event"
	"dvdstore/internal/infrastructure/monitoring"
	"dvdstore/internal/pkg/apperrors"
)

const inputValidationPassed = "Input validation passed"

type CustomerService interface {
	OnboardCustomer(ctx context.Context, input *OnboardingInput) (*Customer, error)
	GetCustomerDetails(ctx context.Context, customerID int32) (*CustomerDetails, error)
	ListCustomersByStore(ctx context.Context, storeID int16) ([]StoreCustomer, error)
	CountCustomersPerStore(ctx context.Context) ([]StoreCustomerCount, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, pub event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

// validateOnboardingInput normalizes the payload in place and rejects it
// before any transaction is opened.
func validateOnboardingInput(in *OnboardingInput) error {
	if in == nil {
		return apperrors.NewValidationError("", "onboarding payload cannot be nil")
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Address.Address = strings.TrimSpace(in.Address.Address)
	in.Address.District = strings.TrimSpace(in.Address.District)
	in.Address.Phone = strings.TrimSpace(in.Address.Phone)
	in.Address.City = strings.TrimSpace(in.Address.City)
	in.Address.Country = strings.TrimSpace(in.Address.Country)

	switch {
	case in.StoreID <= 0:
		return apperrors.NewValidationError("storeId", "must be a positive store reference")
	case in.FirstName == "":
		return apperrors.NewValidationError("firstName", "cannot be empty")
	case in.LastName == "":
		return apperrors.NewValidationError("lastName", "cannot be empty")
	case in.Address.Address == "":
		return apperrors.NewValidationError("address.address", "cannot be empty")
	case in.Address.District == "":
		return apperrors.NewValidationError("address.district", "cannot be empty")
	case in.Address.Phone == "":
		return apperrors.NewValidationError("address.phone", "cannot be empty")
	case in.Address.City == "":
		return apperrors.NewValidationError("address.city", "cannot be empty")
	case in.Address.Country == "":
		return apperrors.NewValidationError("address.country", "cannot be empty")
	}
	return nil
}

func (s *customerService) OnboardCustomer(ctx context.Context, input *OnboardingInput) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to onboard new customer")

	if err := validateOnboardingInput(input); err != nil {
		s.logger.WarnContext(ctx, "Onboarding payload rejected", slog.Any("error", err))
		return nil, err
	}
	s.logger.InfoContext(ctx, inputValidationPassed,
		slog.String("country", input.Address.Country),
		slog.String("city", input.Address.City))

	cust, err := s.repo.Onboard(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to onboard customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to onboard customer: %w", err)
	}

	monitoring.RecordCustomerOnboarded()

	logCtx := s.logger.With(slog.Int("customerID", int(cust.CustomerID)))
	logCtx.InfoContext(ctx, "Successfully onboarded customer, publishing creation event")
	if s.pub != nil {
		created := event.CustomerOnboardedEvent{
			Timestamp: time.Now(),
			Payload:   newOnboardedPayload(cust),
		}
		if pubErr := s.pub.PublishCustomerOnboarded(ctx, created); pubErr != nil {
			logCtx.ErrorContext(ctx, "Customer onboarded, but FAILED to publish creation event", slog.Any("error", pubErr))
		} else {
			logCtx.InfoContext(ctx, "Successfully published customer onboarded event")
		}
	}

	return cust, nil
}

func newOnboardedPayload(cust *Customer) event.CustomerOnboardedPayload {
	if cust == nil {
		return event.CustomerOnboardedPayload{}
	}
	return event.CustomerOnboardedPayload{
		CustomerID: cust.CustomerID,
		StoreID:    cust.StoreID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Email:      cust.Email,
		AddressID:  cust.AddressID,
		ActiveBool: cust.ActiveBool,
		CreateDate: cust.CreateDate,
	}
}

func (s *customerService) GetCustomerDetails(ctx context.Context, customerID int32) (*CustomerDetails, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer details", slog.Int("customerID", int(customerID)))

	details, err := s.repo.FindDetails(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found by repository")
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer details", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get details for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customer details")
	return details, nil
}

func (s *customerService) ListCustomersByStore(ctx context.Context, storeID int16) ([]StoreCustomer, error) {
	s.logger.InfoContext(ctx, "Attempting to list customers for store", slog.Int("storeID", int(storeID)))

	customers, err := s.repo.FindByStore(ctx, storeID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers for store", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers for store %d: %w", storeID, err)
	}

	s.logger.InfoContext(ctx, "Successfully listed customers for store", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) CountCustomersPerStore(ctx context.Context) ([]StoreCustomerCount, error) {
	s.logger.InfoContext(ctx, "Attempting to count customers per store")

	counts, err := s.repo.CountPerStore(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error counting customers per store", slog.Any("error", err))
		return nil, fmt.Errorf("failed to count customers per store: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully counted customers per store", slog.Int("stores", len(counts)))
	return counts, nil
}
