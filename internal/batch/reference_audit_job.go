package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ReferenceAuditor is the slice of the customer repository the audit job
// needs.
type ReferenceAuditor interface {
	AuditReferenceDuplicates(ctx context.Context) (int64, int64, error)
}

// ReferenceAuditJob counts duplicate country and (city, country) reference
// rows. The onboarding flow relies on unique constraints to arbitrate
// concurrent find-or-create races; a non-zero duplicate count means that
// backstop is missing and reference data is drifting.
type ReferenceAuditJob struct {
	auditor ReferenceAuditor
	logger  *slog.Logger
}

func NewReferenceAuditJob(auditor ReferenceAuditor, logger *slog.Logger) *ReferenceAuditJob {
	if auditor == nil || logger == nil {
		panic("ReferenceAuditJob dependencies cannot be nil")
	}
	return &ReferenceAuditJob{
		auditor: auditor,
		logger:  logger.With("job", "ReferenceAudit"),
	}
}

func (j *ReferenceAuditJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting reference data audit job.")

	dupCountries, dupCities, err := j.auditor.AuditReferenceDuplicates(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to audit reference data, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run reference audit: %w", err)
	}

	if dupCountries > 0 || dupCities > 0 {
		j.logger.ErrorContext(ctx, "Duplicate reference rows detected; unique constraints are missing or disabled",
			slog.Int64("duplicate_countries", dupCountries),
			slog.Int64("duplicate_cities", dupCities))
	} else {
		j.logger.InfoContext(ctx, "No duplicate reference rows found.")
	}

	j.logger.InfoContext(ctx, "Reference data audit job finished.", slog.Duration("duration", time.Since(startTime)))
	return nil
}
