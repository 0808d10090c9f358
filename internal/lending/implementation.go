// internal/lending/implementation.go
package lending

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameshelf/internal/apperr"
)

// service implements the Service interface.
type service struct {
	store  Store
	users  UserStore
	copies CopyStore
	tracer trace.Tracer
	now    func() time.Time
}

// NewService creates a new borrow lifecycle engine instance.
func NewService(store Store, users UserStore, copies CopyStore) Service {
	return &service{
		store:  store,
		users:  users,
		copies: copies,
		tracer: otel.Tracer("gameshelf/lending"),
		now:    time.Now,
	}
}

// CreateBorrowRequest records a PENDING request against an existing copy.
// Overlapping requests for the same copy may coexist; only a decision changes
// anything.
func (s *service) CreateBorrowRequest(ctx context.Context, borrowerID, ownerID int64, gameTitle string, startDate, endDate time.Time) (*BorrowRequest, error) {
	borrower, err := s.users.FindByID(ctx, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up borrower %d: %w", borrowerID, err)
	}
	if borrower == nil {
		return nil, apperr.NotFound("borrower %d not found", borrowerID)
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner %d: %w", ownerID, err)
	}
	if owner == nil {
		return nil, apperr.NotFound("owner %d not found", ownerID)
	}

	copy, err := s.copies.FindByOwnerAndTitle(ctx, ownerID, gameTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up copy: %w", err)
	}
	if copy == nil {
		return nil, apperr.NotFound("game copy of %q owned by user %d not found", gameTitle, ownerID)
	}

	request := &BorrowRequest{
		ID:          uuid.New(),
		Status:      RequestPending,
		RequestDate: s.now(),
		StartDate:   startDate,
		EndDate:     endDate,
		BorrowerID:  borrowerID,
		OwnerID:     ownerID,
		GameTitle:   gameTitle,
	}
	if err := s.store.Insert(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to insert borrow request: %w", err)
	}
	return request, nil
}

// AcceptRequest moves a PENDING request to ACCEPTED and flips the target copy
// to BORROWED. Both writes commit together; a request that has already been
// decided is not overwritten.
func (s *service) AcceptRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error) {
	return s.decide(ctx, requestID, RequestAccepted)
}

// DeclineRequest moves a PENDING request to DECLINED. The copy's status is
// untouched.
func (s *service) DeclineRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error) {
	return s.decide(ctx, requestID, RequestDeclined)
}

func (s *service) decide(ctx context.Context, requestID uuid.UUID, status RequestStatus) (*BorrowRequest, error) {
	ctx, span := s.tracer.Start(ctx, "lending.decide",
		trace.WithAttributes(
			attribute.String("request.id", requestID.String()),
			attribute.String("request.decision", string(status)),
		),
	)
	defer span.End()

	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	decisionDate := s.now()
	ok, err := s.store.Decide(ctx, requestID, status, decisionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to decide borrow request: %w", err)
	}
	if !ok {
		span.SetAttributes(attribute.Bool("conflict.detected", true))
		return nil, apperr.Conflict("borrow request %s has already been decided", requestID)
	}

	request.Status = status
	request.DecisionDate = &decisionDate
	return request, nil
}

// GetRequest retrieves one borrow request by id.
func (s *service) GetRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error) {
	return s.findRequest(ctx, requestID)
}

// ListRequests returns every borrow request.
func (s *service) ListRequests(ctx context.Context) ([]*BorrowRequest, error) {
	return s.store.FindAll(ctx)
}

// ListByBorrower returns every request created by one borrower. The borrower
// must exist; an empty result is not an error.
func (s *service) ListByBorrower(ctx context.Context, borrowerID int64) ([]*BorrowRequest, error) {
	borrower, err := s.users.FindByID(ctx, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up borrower %d: %w", borrowerID, err)
	}
	if borrower == nil {
		return nil, apperr.NotFound("user %d not found", borrowerID)
	}
	return s.store.FindByBorrower(ctx, borrowerID)
}

func (s *service) findRequest(ctx context.Context, requestID uuid.UUID) (*BorrowRequest, error) {
	request, err := s.store.FindByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up borrow request: %w", err)
	}
	if request == nil {
		return nil, apperr.NotFound("borrow request %s not found", requestID)
	}
	return request, nil
}
