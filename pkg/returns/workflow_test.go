package returns

import (
	"errors"
	"testing"
	"time"

	"shopsphere-admin-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest() *entity.ReturnRequest {
	return &entity.ReturnRequest{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		Status:      entity.ReturnStatusPending,
		Reason:      "arrived damaged",
		SubmittedAt: time.Now().Add(-24 * time.Hour),
		Items: []entity.ReturnItem{
			{ProductName: "Mug", ReturnQuantity: 2, MaxQuantity: 2, UnitPrice: 10.00, TotalPrice: 20.00},
			{ProductName: "Coaster", ReturnQuantity: 1, MaxQuantity: 4, UnitPrice: 15.50, TotalPrice: 15.50},
		},
	}
}

func TestDecideApprove(t *testing.T) {
	req := pendingRequest()
	reviewer := uuid.New()
	now := time.Now()

	err := Decide(req, entity.ReturnStatusApproved, "restocked", reviewer, now)
	require.NoError(t, err)

	assert.Equal(t, entity.ReturnStatusApproved, req.Status)
	require.NotNil(t, req.DecisionAt)
	assert.Equal(t, now, *req.DecisionAt)
	assert.Equal(t, "restocked", req.DecisionNotes)
	assert.False(t, CanBeAppealed(req, now), "only denied requests are appealable")
}

func TestDecideAlreadyDecided(t *testing.T) {
	req := pendingRequest()
	now := time.Now()
	require.NoError(t, Decide(req, entity.ReturnStatusApproved, "ok", uuid.New(), now))

	decidedAt := *req.DecisionAt
	err := Decide(req, entity.ReturnStatusDenied, "changed my mind", uuid.New(), now.Add(time.Hour))

	require.ErrorIs(t, err, ErrInvalidStateTransition)
	// Failed transition must leave the entity untouched.
	assert.Equal(t, entity.ReturnStatusApproved, req.Status)
	assert.Equal(t, decidedAt, *req.DecisionAt)
	assert.Equal(t, "ok", req.DecisionNotes)
}

func TestDecideRejectsNonTerminalDecision(t *testing.T) {
	req := pendingRequest()
	err := Decide(req, entity.ReturnStatusCompleted, "", uuid.New(), time.Now())
	require.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Equal(t, entity.ReturnStatusPending, req.Status)
}

func TestComplete(t *testing.T) {
	req := pendingRequest()
	require.NoError(t, Decide(req, entity.ReturnStatusApproved, "", uuid.New(), time.Now()))
	require.NoError(t, Complete(req))
	assert.Equal(t, entity.ReturnStatusCompleted, req.Status)

	// COMPLETED is terminal.
	assert.ErrorIs(t, Complete(req), ErrInvalidStateTransition)
}

func TestCompleteRequiresApproved(t *testing.T) {
	req := pendingRequest()
	require.NoError(t, Decide(req, entity.ReturnStatusDenied, "", uuid.New(), time.Now()))
	assert.ErrorIs(t, Complete(req), ErrInvalidStateTransition)
}

func TestTotalRefundAmount(t *testing.T) {
	req := pendingRequest()
	assert.InDelta(t, 35.50, TotalRefundAmount(req), 0.001)
}

func TestAppealFlow(t *testing.T) {
	req := pendingRequest()
	now := time.Now()

	require.NoError(t, Decide(req, entity.ReturnStatusDenied, "outside policy", uuid.New(), now))
	require.True(t, CanBeAppealed(req, now))

	appeal, err := SubmitAppeal(req, "item was defective on arrival", now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.AppealStatusPending, appeal.Status)
	assert.Equal(t, req.ID, appeal.ReturnRequestID)

	// One appeal per request.
	assert.False(t, CanBeAppealed(req, now.Add(time.Hour)))
	_, err = SubmitAppeal(req, "second try", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	// Approving the appeal overrides the parent denial.
	decideAt := now.Add(3 * time.Hour)
	require.NoError(t, DecideAppeal(req, entity.AppealStatusApproved, "customer is right", decideAt))
	assert.Equal(t, entity.AppealStatusApproved, req.Appeal.Status)
	assert.Equal(t, entity.ReturnStatusApproved, req.Status)
	require.NotNil(t, req.Appeal.DecisionAt)
	assert.Equal(t, decideAt, *req.Appeal.DecisionAt)
}

func TestAppealDenialKeepsParentDenied(t *testing.T) {
	req := pendingRequest()
	now := time.Now()
	require.NoError(t, Decide(req, entity.ReturnStatusDenied, "", uuid.New(), now))
	_, err := SubmitAppeal(req, "please reconsider", now)
	require.NoError(t, err)

	require.NoError(t, DecideAppeal(req, entity.AppealStatusDenied, "policy stands", now))
	assert.Equal(t, entity.AppealStatusDenied, req.Appeal.Status)
	assert.Equal(t, entity.ReturnStatusDenied, req.Status)

	// No re-decision of a decided appeal.
	err = DecideAppeal(req, entity.AppealStatusApproved, "", now)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestAppealWindowExpiry(t *testing.T) {
	req := pendingRequest()
	deniedAt := time.Now().Add(-time.Duration(AppealWindowDays+1) * 24 * time.Hour)
	require.NoError(t, Decide(req, entity.ReturnStatusDenied, "", uuid.New(), deniedAt))

	assert.False(t, CanBeAppealed(req, time.Now()))
	_, err := SubmitAppeal(req, "too late", time.Now())
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestAppealRequiresDeniedParent(t *testing.T) {
	req := pendingRequest()
	_, err := SubmitAppeal(req, "not even decided", time.Now())
	assert.True(t, errors.Is(err, ErrInvalidStateTransition))
}

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name    string
		items   []entity.ReturnItem
		wantErr int
	}{
		{
			name: "valid items",
			items: []entity.ReturnItem{
				{ReturnQuantity: 2, MaxQuantity: 3, UnitPrice: 10, TotalPrice: 20},
			},
			wantErr: 0,
		},
		{
			name:    "empty items rejected",
			items:   nil,
			wantErr: 1,
		},
		{
			name: "over purchased quantity rejected",
			items: []entity.ReturnItem{
				{ReturnQuantity: 5, MaxQuantity: 3, UnitPrice: 10, TotalPrice: 50},
			},
			wantErr: 1,
		},
		{
			name: "unreconciled total rejected",
			items: []entity.ReturnItem{
				{ReturnQuantity: 2, MaxQuantity: 3, UnitPrice: 10, TotalPrice: 25},
			},
			wantErr: 1,
		},
		{
			name: "zero quantity rejected",
			items: []entity.ReturnItem{
				{ReturnQuantity: 0, MaxQuantity: 3, UnitPrice: 10, TotalPrice: 0},
			},
			wantErr: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateItems(tt.items)
			assert.Len(t, errs, tt.wantErr)
		})
	}
}
