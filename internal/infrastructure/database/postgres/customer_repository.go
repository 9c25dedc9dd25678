package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dvdstore/internal/domain/customer"
	"dvdstore/internal/infrastructure/monitoring"
	"dvdstore/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var errMsgFormat = "%w: %w"

// onboardingTxOptions pins the onboarding transaction to repeatable read so
// reference lookups stay stable across the four-step sequence.
var onboardingTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead}

const (
	countryExistsSQL = `SELECT exists(SELECT 1 FROM country WHERE country = $1)`
	selectCountrySQL = `SELECT country_id FROM country WHERE country = $1`
	insertCountrySQL = `INSERT INTO country (country) VALUES ($1) RETURNING country_id`

	cityExistsSQL = `SELECT exists(SELECT 1 FROM city WHERE city = $1 AND country_id = $2)`
	selectCitySQL = `SELECT city_id FROM city WHERE city = $1 AND country_id = $2`
	insertCitySQL = `INSERT INTO city (city, country_id) VALUES ($1, $2) RETURNING city_id`

	insertAddressSQL = `
        INSERT INTO address (address, address2, district, city_id, postal_code, phone)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING address_id`

	insertCustomerSQL = `
        INSERT INTO customer (store_id, first_name, last_name, email, address_id, activebool)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING customer_id, store_id, first_name, last_name, email, address_id, activebool, active, create_date, last_update`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

// Onboard runs the full onboarding sequence: resolve the country, resolve the
// city under that country, insert the address, insert the customer, commit.
// Country and city resolution is check-then-act, so two concurrent requests
// for the same new reference row can both pass the existence check; the
// unique constraints on country(country) and city(city, country_id) turn the
// losing insert into a detectable conflict, and the whole sequence is retried
// once so the loser picks up the winner's row.
func (r *CustomerRepository) Onboard(ctx context.Context, input *customer.OnboardingInput) (*customer.Customer, error) {
	status := "success"
	startTime := time.Now()

	cust, err := r.onboardOnce(ctx, input)
	if err != nil && errors.Is(err, apperrors.ErrAlreadyExists) {
		r.logger.WarnContext(ctx, "Lost a reference-row insert race, retrying onboarding once", slog.Any("error", err))
		monitoring.RecordReferenceRaceRetry()
		cust, err = r.onboardOnce(ctx, input)
	}

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("OnboardCustomer", status, time.Since(startTime))
	return cust, err
}

func (r *CustomerRepository) onboardOnce(ctx context.Context, input *customer.OnboardingInput) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Beginning onboarding transaction")
	tx, err := r.db.BeginTx(ctx, onboardingTxOptions)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin onboarding transaction", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to begin onboarding transaction: %w", apperrors.ErrTransaction, err)
	}
	defer r.rollback(ctx, tx)

	countryID, err := r.resolveCountry(ctx, tx, input.Address.Country)
	if err != nil {
		return nil, err
	}

	cityID, err := r.resolveCity(ctx, tx, input.Address.City, countryID)
	if err != nil {
		return nil, err
	}

	addressID, err := r.insertAddress(ctx, tx, &input.Address, cityID)
	if err != nil {
		return nil, err
	}

	cust, err := r.insertCustomer(ctx, tx, input, addressID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit onboarding transaction", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to commit onboarding transaction: %w", apperrors.ErrTransaction, err)
	}

	r.logger.InfoContext(ctx, "Onboarding transaction committed",
		slog.Int("customerID", int(cust.CustomerID)),
		slog.Int("addressID", int(cust.AddressID)))
	return cust, nil
}

// rollback releases the transaction on every non-commit exit path. After a
// successful commit pgx reports ErrTxClosed, which is not a failure.
func (r *CustomerRepository) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.logger.ErrorContext(ctx, "Failed to rollback onboarding transaction", slog.Any("error", err))
	}
}

// resolveCountry returns the identifier of the country row with the given
// name, inserting it if absent.
func (r *CustomerRepository) resolveCountry(ctx context.Context, tx pgx.Tx, name string) (int32, error) {
	var exists bool
	if err := tx.QueryRow(ctx, countryExistsSQL, name).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check country existence", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to check country existence: %w", apperrors.ErrDatabase, err)
	}

	var countryID int32
	if exists {
		if err := tx.QueryRow(ctx, selectCountrySQL, name).Scan(&countryID); err != nil {
			r.logger.ErrorContext(ctx, "Failed to fetch existing country", slog.Any("error", err))
			return 0, fmt.Errorf("%w: failed to fetch existing country: %w", apperrors.ErrDatabase, err)
		}
		r.logger.DebugContext(ctx, "Country resolved to existing row", slog.Int("countryID", int(countryID)))
		return countryID, nil
	}

	if err := tx.QueryRow(ctx, insertCountrySQL, name).Scan(&countryID); err != nil {
		translated := translateDBError(err, r.logger)
		if errors.Is(translated, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Concurrent insert won the country race", slog.String("country", name))
			return 0, translated
		}
		r.logger.ErrorContext(ctx, "Failed to insert country", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to insert country: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Country created", slog.Int("countryID", int(countryID)))
	return countryID, nil
}

// resolveCity returns the identifier of the city row keyed by (name,
// countryID), inserting it if absent. The country must already be resolved.
func (r *CustomerRepository) resolveCity(ctx context.Context, tx pgx.Tx, name string, countryID int32) (int32, error) {
	var exists bool
	if err := tx.QueryRow(ctx, cityExistsSQL, name, countryID).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check city existence", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to check city existence: %w", apperrors.ErrDatabase, err)
	}

	var cityID int32
	if exists {
		if err := tx.QueryRow(ctx, selectCitySQL, name, countryID).Scan(&cityID); err != nil {
			r.logger.ErrorContext(ctx, "Failed to fetch existing city", slog.Any("error", err))
			return 0, fmt.Errorf("%w: failed to fetch existing city: %w", apperrors.ErrDatabase, err)
		}
		r.logger.DebugContext(ctx, "City resolved to existing row", slog.Int("cityID", int(cityID)))
		return cityID, nil
	}

	if err := tx.QueryRow(ctx, insertCitySQL, name, countryID).Scan(&cityID); err != nil {
		translated := translateDBError(err, r.logger)
		if errors.Is(translated, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Concurrent insert won the city race",
				slog.String("city", name), slog.Int("countryID", int(countryID)))
			return 0, translated
		}
		r.logger.ErrorContext(ctx, "Failed to insert city", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to insert city: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "City created", slog.Int("cityID", int(cityID)), slog.Int("countryID", int(countryID)))
	return cityID, nil
}

// insertAddress always creates a new address row; addresses are never shared
// between customers.
func (r *CustomerRepository) insertAddress(ctx context.Context, tx pgx.Tx, addr *customer.AddressInput, cityID int32) (int32, error) {
	var addressID int32
	err := tx.QueryRow(ctx, insertAddressSQL,
		addr.Address,
		addr.Address2,
		addr.District,
		cityID,
		addr.PostalCode,
		addr.Phone,
	).Scan(&addressID)
	if err != nil {
		translated := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to insert address", slog.Any("error", err))
		return 0, fmt.Errorf("failed to insert address: %w", translated)
	}

	r.logger.DebugContext(ctx, "Address created", slog.Int("addressID", int(addressID)))
	return addressID, nil
}

func (r *CustomerRepository) insertCustomer(ctx context.Context, tx pgx.Tx, input *customer.OnboardingInput, addressID int32) (*customer.Customer, error) {
	var cust customer.Customer
	err := tx.QueryRow(ctx, insertCustomerSQL,
		input.StoreID,
		input.FirstName,
		input.LastName,
		input.Email,
		addressID,
		input.ActiveBool,
	).Scan(
		&cust.CustomerID,
		&cust.StoreID,
		&cust.FirstName,
		&cust.LastName,
		&cust.Email,
		&cust.AddressID,
		&cust.ActiveBool,
		&cust.Active,
		&cust.CreateDate,
		&cust.LastUpdate,
	)
	if err != nil {
		translated := translateDBError(err, r.logger)
		if errors.Is(translated, apperrors.ErrConstraintViolation) {
			r.logger.WarnContext(ctx, "Customer insert violated a constraint", slog.Any("error", err))
			return nil, fmt.Errorf("failed to insert customer: %w", translated)
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) CountPerStore(ctx context.Context) ([]customer.StoreCustomerCount, error) {
	query := `
        SELECT count(*) AS count, t3.address
        FROM customer t1
        JOIN store t2
            ON t2.store_id = t1.store_id
        JOIN address t3
            ON t2.address_id = t3.address_id
        GROUP BY t1.store_id, t3.address
        ORDER BY count DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customer counts per store", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	counts := make([]customer.StoreCustomerCount, 0)
	for rows.Next() {
		var c customer.StoreCustomerCount
		if err := rows.Scan(&c.Count, &c.Address); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan store count row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating store count rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return counts, nil
}

func (r *CustomerRepository) FindByStore(ctx context.Context, storeID int16) ([]customer.StoreCustomer, error) {
	query := `
        SELECT first_name, last_name, email, activebool, create_date, last_update
        FROM customer
        WHERE store_id = $1`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers for store", "store_id", storeID, slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]customer.StoreCustomer, 0)
	for rows.Next() {
		var c customer.StoreCustomer
		if err := rows.Scan(&c.FirstName, &c.LastName, &c.Email, &c.ActiveBool, &c.CreateDate, &c.LastUpdate); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan store customer row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating store customer rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return customers, nil
}

func (r *CustomerRepository) FindDetails(ctx context.Context, customerID int32) (*customer.CustomerDetails, error) {
	query := `
        SELECT t1.first_name, t1.last_name, t1.email, t1.activebool, t1.create_date, t1.last_update,
               t2.address, t2.district, t2.phone, t2.postal_code,
               t3.city
        FROM customer t1
        JOIN address t2
            ON t1.address_id = t2.address_id
        JOIN city t3
            ON t2.city_id = t3.city_id
        WHERE customer_id = $1`

	var d customer.CustomerDetails
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&d.FirstName,
		&d.LastName,
		&d.Email,
		&d.ActiveBool,
		&d.CreateDate,
		&d.LastUpdate,
		&d.Address,
		&d.District,
		&d.Phone,
		&d.PostalCode,
		&d.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", "customer_id", customerID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query customer details", "customer_id", customerID, slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return &d, nil
}

// AuditReferenceDuplicates counts reference rows that violate the logical
// uniqueness of country(country) and city(city, country_id). A non-zero
// result means the insert-race backstop is missing its unique constraint.
func (r *CustomerRepository) AuditReferenceDuplicates(ctx context.Context) (int64, int64, error) {
	countryQuery := `
        SELECT COALESCE(SUM(cnt - 1), 0)
        FROM (SELECT count(*) AS cnt FROM country GROUP BY country HAVING count(*) > 1) dup`
	cityQuery := `
        SELECT COALESCE(SUM(cnt - 1), 0)
        FROM (SELECT count(*) AS cnt FROM city GROUP BY city, country_id HAVING count(*) > 1) dup`

	var dupCountries int64
	if err := r.db.QueryRow(ctx, countryQuery).Scan(&dupCountries); err != nil {
		r.logger.ErrorContext(ctx, "Failed to audit duplicate countries", slog.Any("error", err))
		return 0, 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	var dupCities int64
	if err := r.db.QueryRow(ctx, cityQuery).Scan(&dupCities); err != nil {
		r.logger.ErrorContext(ctx, "Failed to audit duplicate cities", slog.Any("error", err))
		return 0, 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return dupCountries, dupCities, nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		case "23503", "23502":
			contextLogger.Warn("Database constraint violation", "code", pgErr.Code, "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrConstraintViolation, pgErr.Message)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
