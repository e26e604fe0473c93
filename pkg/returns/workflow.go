// Package returns implements the return-request and appeal state machines.
// The functions mutate the passed entity only after all preconditions pass;
// on ErrInvalidStateTransition the entity is untouched. Persistence is the
// caller's responsibility.
package returns

import (
	"errors"
	"fmt"
	"math"
	"time"

	"shopsphere-admin-be/internal/entity"

	"github.com/google/uuid"
)

// ErrInvalidStateTransition is returned when a workflow action is attempted
// from a state that does not allow it.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// AppealWindowDays is how long after a denial an appeal may still be filed.
const AppealWindowDays = 14

// Decide records a reviewer decision on a pending request.
// Only PENDING requests can be decided, and only to APPROVED or DENIED.
func Decide(req *entity.ReturnRequest, decision entity.ReturnStatus, notes string, reviewerID uuid.UUID, now time.Time) error {
	if decision != entity.ReturnStatusApproved && decision != entity.ReturnStatusDenied {
		return fmt.Errorf("%w: decision must be APPROVED or DENIED, got %s", ErrInvalidStateTransition, decision)
	}
	if req.Status != entity.ReturnStatusPending {
		return fmt.Errorf("%w: only pending requests can be decided (current status %s)", ErrInvalidStateTransition, req.Status)
	}

	req.Status = decision
	req.DecisionAt = &now
	req.DecisionNotes = notes
	req.DecidedBy = &reviewerID
	return nil
}

// Complete marks an approved request as completed by fulfillment.
func Complete(req *entity.ReturnRequest) error {
	if req.Status != entity.ReturnStatusApproved {
		return fmt.Errorf("%w: only approved requests can be completed (current status %s)", ErrInvalidStateTransition, req.Status)
	}
	req.Status = entity.ReturnStatusCompleted
	return nil
}

// CanBeAppealed reports whether an appeal may be filed right now:
// the request was denied, no appeal exists yet, and the appeal window
// since the denial has not elapsed.
func CanBeAppealed(req *entity.ReturnRequest, now time.Time) bool {
	if req.Status != entity.ReturnStatusDenied {
		return false
	}
	if req.Appeal != nil {
		return false
	}
	if req.DecisionAt == nil {
		return false
	}
	return now.Before(req.DecisionAt.AddDate(0, 0, AppealWindowDays))
}

// SubmitAppeal files the one allowed appeal against a denied request.
func SubmitAppeal(req *entity.ReturnRequest, reason string, now time.Time) (*entity.ReturnAppeal, error) {
	if !CanBeAppealed(req, now) {
		return nil, fmt.Errorf("%w: request %s is not appealable", ErrInvalidStateTransition, req.ID)
	}

	appeal := &entity.ReturnAppeal{
		ID:              uuid.New(),
		ReturnRequestID: req.ID,
		Reason:          reason,
		Status:          entity.AppealStatusPending,
		SubmittedAt:     now,
	}
	req.Appeal = appeal
	return appeal, nil
}

// DecideAppeal records the decision on a pending appeal. An approved appeal
// overrides the parent request's DENIED status to APPROVED.
func DecideAppeal(req *entity.ReturnRequest, decision entity.AppealStatus, notes string, now time.Time) error {
	if decision != entity.AppealStatusApproved && decision != entity.AppealStatusDenied {
		return fmt.Errorf("%w: appeal decision must be APPROVED or DENIED, got %s", ErrInvalidStateTransition, decision)
	}
	if req.Appeal == nil {
		return fmt.Errorf("%w: request %s has no appeal", ErrInvalidStateTransition, req.ID)
	}
	if req.Appeal.Status != entity.AppealStatusPending {
		return fmt.Errorf("%w: only pending appeals can be decided (current status %s)", ErrInvalidStateTransition, req.Appeal.Status)
	}

	req.Appeal.Status = decision
	req.Appeal.DecisionAt = &now
	req.Appeal.DecisionNotes = notes

	if decision == entity.AppealStatusApproved {
		req.Status = entity.ReturnStatusApproved
	}
	return nil
}

// TotalRefundAmount is the sum of item totals, the amount refunded
// downstream when the request is approved.
func TotalRefundAmount(req *entity.ReturnRequest) float64 {
	total := 0.0
	for _, it := range req.Items {
		total += it.TotalPrice
	}
	return total
}

// ValidateItems checks a submission's items against the ordered quantities
// and the price reconciliation invariant. Returns all problems found.
func ValidateItems(items []entity.ReturnItem) []string {
	var errs []string

	if len(items) == 0 {
		errs = append(errs, "at least one return item is required")
	}
	for i, it := range items {
		if it.ReturnQuantity <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: return quantity must be positive", i))
		}
		if it.ReturnQuantity > it.MaxQuantity {
			errs = append(errs, fmt.Sprintf("item %d: return quantity %d exceeds purchased quantity %d", i, it.ReturnQuantity, it.MaxQuantity))
		}
		expected := it.UnitPrice * float64(it.ReturnQuantity)
		if math.Abs(it.TotalPrice-expected) > 0.005 {
			errs = append(errs, fmt.Sprintf("item %d: total price %.2f does not match unit price x quantity %.2f", i, it.TotalPrice, expected))
		}
	}
	return errs
}
