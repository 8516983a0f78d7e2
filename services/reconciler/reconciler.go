// Package reconciler repairs drift between the expert directory and the
// booking ledger: slots flagged booked that no booking record backs up.
package reconciler

import (
	"context"
	"fmt"

	"bookexpert/models"

	"go.uber.org/zap"
)

// ExpertSource is the slice of the expert repository the pass reads and
// repairs.
type ExpertSource interface {
	All(ctx context.Context) ([]models.Expert, error)
	FreeSlot(ctx context.Context, expertID, slotID string) error
}

// BookingSource answers the existence check behind each repair decision.
type BookingSource interface {
	ExistsForSlot(ctx context.Context, expertID, slotID string) (bool, error)
}

// Report summarizes one reconciliation pass.
type Report struct {
	ExpertsScanned int `json:"expertsScanned"`
	SlotsChecked   int `json:"slotsChecked"`
	SlotsRepaired  int `json:"slotsRepaired"`
	Failures       int `json:"failures"`
}

// Reconciler runs the batch repair pass. It holds no state between runs and
// takes no locks; a slot legitimately booked mid-scan has a matching ledger
// entry and is left untouched.
type Reconciler struct {
	Experts  ExpertSource
	Bookings BookingSource
	Logger   *zap.Logger
}

// Run scans every expert and clears occupancy flags that no booking record of
// any status backs up. The check is deliberately existence-based rather than
// active-status-based: a slot freed by completion while its Completed record
// survives must not be second-guessed. Failures on one expert are counted and
// logged, never abort the pass. Running twice with no intervening writes
// repairs nothing on the second run.
func (r *Reconciler) Run(ctx context.Context) (Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.L()
	}

	var report Report
	experts, err := r.Experts.All(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to load experts: %w", err)
	}

	for i := range experts {
		expert := &experts[i]
		report.ExpertsScanned++

		for _, slot := range expert.TimeSlots {
			if !slot.IsBooked {
				continue
			}
			report.SlotsChecked++

			exists, err := r.Bookings.ExistsForSlot(ctx, expert.ID, slot.ID)
			if err != nil {
				report.Failures++
				logger.Error("reconcile: booking lookup failed",
					zap.String("expertId", expert.ID),
					zap.String("slotId", slot.ID),
					zap.Error(err))
				continue
			}
			if exists {
				continue
			}

			if err := r.Experts.FreeSlot(ctx, expert.ID, slot.ID); err != nil {
				report.Failures++
				logger.Error("reconcile: failed to clear stale flag",
					zap.String("expertId", expert.ID),
					zap.String("slotId", slot.ID),
					zap.Error(err))
				continue
			}
			report.SlotsRepaired++
			logger.Info("reconcile: cleared stale occupancy flag",
				zap.String("expertId", expert.ID),
				zap.String("expertName", expert.Name),
				zap.String("slotId", slot.ID))
		}
	}

	logger.Info("reconcile: pass complete",
		zap.Int("expertsScanned", report.ExpertsScanned),
		zap.Int("slotsChecked", report.SlotsChecked),
		zap.Int("slotsRepaired", report.SlotsRepaired),
		zap.Int("failures", report.Failures))
	return report, nil
}
