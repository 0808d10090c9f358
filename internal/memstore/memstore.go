// internal/memstore/memstore.go
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gameshelf/internal/account"
	"gameshelf/internal/apperr"
	"gameshelf/internal/catalog"
	"gameshelf/internal/collection"
	"gameshelf/internal/events"
	"gameshelf/internal/lending"
	"gameshelf/internal/review"
)

// Store is an in-memory implementation of every persistence contract in the
// system, used by the test suites. One mutex guards all the maps, which gives
// the per-domain views the same atomicity the SQL stores get from
// transactions. The views returned by Users, Games, Copies and friends all
// share the same data.
type Store struct {
	mu sync.Mutex

	nextUserID    int64
	users         map[int64]account.UserAccount
	games         map[string]catalog.Game
	copies        map[copyKey]collection.GameCopy
	requests      map[uuid.UUID]lending.BorrowRequest
	events        map[uuid.UUID]events.Event
	registrations map[regKey]events.EventRegistration
	reviews       map[reviewKey]review.Review
}

type copyKey struct {
	ownerID int64
	title   string
}

type regKey struct {
	participantID int64
	eventID       uuid.UUID
}

type reviewKey struct {
	reviewerID int64
	title      string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		nextUserID:    1,
		users:         make(map[int64]account.UserAccount),
		games:         make(map[string]catalog.Game),
		copies:        make(map[copyKey]collection.GameCopy),
		requests:      make(map[uuid.UUID]lending.BorrowRequest),
		events:        make(map[uuid.UUID]events.Event),
		registrations: make(map[regKey]events.EventRegistration),
		reviews:       make(map[reviewKey]review.Review),
	}
}

func (s *Store) Users() *UserStore                 { return &UserStore{s} }
func (s *Store) Games() *GameStore                 { return &GameStore{s} }
func (s *Store) Copies() *CopyStore                { return &CopyStore{s} }
func (s *Store) Requests() *RequestStore           { return &RequestStore{s} }
func (s *Store) Events() *EventStore               { return &EventStore{s} }
func (s *Store) Registrations() *RegistrationStore { return &RegistrationStore{s} }
func (s *Store) Reviews() *ReviewStore             { return &ReviewStore{s} }

var (
	_ account.Store            = (*UserStore)(nil)
	_ catalog.Store            = (*GameStore)(nil)
	_ collection.Store         = (*CopyStore)(nil)
	_ account.CopyCounter      = (*CopyStore)(nil)
	_ lending.CopyStore        = (*CopyStore)(nil)
	_ lending.Store            = (*RequestStore)(nil)
	_ collection.RequestPurger = (*RequestStore)(nil)
	_ events.RequestFinder     = (*RequestStore)(nil)
	_ events.Store             = (*EventStore)(nil)
	_ events.RegistrationStore = (*RegistrationStore)(nil)
	_ review.Store             = (*ReviewStore)(nil)
)

// UserStore is the user account view of the store.
type UserStore struct{ s *Store }

func (v *UserStore) FindByID(ctx context.Context, id int64) (*account.UserAccount, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	u, ok := v.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (v *UserStore) FindAll(ctx context.Context) ([]*account.UserAccount, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]*account.UserAccount, 0, len(v.s.users))
	for _, u := range v.s.users {
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (v *UserStore) Insert(ctx context.Context, u *account.UserAccount) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	u.ID = v.s.nextUserID
	v.s.nextUserID++
	v.s.users[u.ID] = *u
	return nil
}

func (v *UserStore) Update(ctx context.Context, u *account.UserAccount) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.users[u.ID] = *u
	return nil
}

func (v *UserStore) Delete(ctx context.Context, id int64) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	delete(v.s.users, id)
	return nil
}

// GameStore is the catalog view of the store.
type GameStore struct{ s *Store }

func (v *GameStore) FindByTitle(ctx context.Context, title string) (*catalog.Game, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	g, ok := v.s.games[title]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (v *GameStore) FindAll(ctx context.Context) ([]*catalog.Game, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]*catalog.Game, 0, len(v.s.games))
	for _, g := range v.s.games {
		g := g
		out = append(out, &g)
	}
	return out, nil
}

func (v *GameStore) Insert(ctx context.Context, g *catalog.Game) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, exists := v.s.games[g.Title]; exists {
		return apperr.Conflict("game with title %q already exists", g.Title)
	}
	v.s.games[g.Title] = *g
	return nil
}

func (v *GameStore) Update(ctx context.Context, g *catalog.Game) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.games[g.Title] = *g
	return nil
}

func (v *GameStore) Delete(ctx context.Context, title string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	delete(v.s.games, title)
	return nil
}

// CopyStore is the game copy view of the store.
type CopyStore struct{ s *Store }

func (v *CopyStore) FindByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (*collection.GameCopy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c, ok := v.s.copies[copyKey{ownerID, title}]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (v *CopyStore) FindAllByOwner(ctx context.Context, ownerID int64) ([]*collection.GameCopy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*collection.GameCopy
	for _, c := range v.s.copies {
		if c.OwnerID == ownerID {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (v *CopyStore) FindAll(ctx context.Context) ([]*collection.GameCopy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]*collection.GameCopy, 0, len(v.s.copies))
	for _, c := range v.s.copies {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (v *CopyStore) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	count := 0
	for _, c := range v.s.copies {
		if c.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (v *CopyStore) Insert(ctx context.Context, c *collection.GameCopy) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := copyKey{c.OwnerID, c.GameTitle}
	if _, exists := v.s.copies[key]; exists {
		return apperr.Conflict("user %d already registered a copy of %q", c.OwnerID, c.GameTitle)
	}
	v.s.copies[key] = *c
	return nil
}

func (v *CopyStore) Update(ctx context.Context, c *collection.GameCopy) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.copies[copyKey{c.OwnerID, c.GameTitle}] = *c
	return nil
}

func (v *CopyStore) Delete(ctx context.Context, ownerID int64, title string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	delete(v.s.copies, copyKey{ownerID, title})
	return nil
}

// RequestStore is the borrow request view of the store.
type RequestStore struct{ s *Store }

func (v *RequestStore) FindByID(ctx context.Context, id uuid.UUID) (*lending.BorrowRequest, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	r, ok := v.s.requests[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (v *RequestStore) FindAll(ctx context.Context) ([]*lending.BorrowRequest, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]*lending.BorrowRequest, 0, len(v.s.requests))
	for _, r := range v.s.requests {
		r := r
		out = append(out, &r)
	}
	return out, nil
}

func (v *RequestStore) FindByBorrower(ctx context.Context, borrowerID int64) ([]*lending.BorrowRequest, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*lending.BorrowRequest
	for _, r := range v.s.requests {
		if r.BorrowerID == borrowerID {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (v *RequestStore) FindByBorrowerAndTitle(ctx context.Context, borrowerID int64, title string) ([]*lending.BorrowRequest, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*lending.BorrowRequest
	for _, r := range v.s.requests {
		if r.BorrowerID == borrowerID && r.GameTitle == title {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (v *RequestStore) Insert(ctx context.Context, r *lending.BorrowRequest) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.requests[r.ID] = *r
	return nil
}

// Decide mirrors the SQL store: the transition only happens while the
// request is still PENDING, and an accept flips the copy to BORROWED under
// the same lock.
func (v *RequestStore) Decide(ctx context.Context, id uuid.UUID, status lending.RequestStatus, decisionDate time.Time) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	r, ok := v.s.requests[id]
	if !ok || r.Status != lending.RequestPending {
		return false, nil
	}
	r.Status = status
	r.DecisionDate = &decisionDate
	v.s.requests[id] = r
	if status == lending.RequestAccepted {
		key := copyKey{r.OwnerID, r.GameTitle}
		if c, exists := v.s.copies[key]; exists {
			c.Status = collection.StatusBorrowed
			v.s.copies[key] = c
		}
	}
	return true, nil
}

func (v *RequestStore) DeleteByCopy(ctx context.Context, ownerID int64, title string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for id, r := range v.s.requests {
		if r.OwnerID == ownerID && r.GameTitle == title {
			delete(v.s.requests, id)
		}
	}
	return nil
}

// EventStore is the event view of the store.
type EventStore struct{ s *Store }

func (v *EventStore) FindByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	e, ok := v.s.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (v *EventStore) FindAll(ctx context.Context) ([]*events.Event, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]*events.Event, 0, len(v.s.events))
	for _, e := range v.s.events {
		e := e
		out = append(out, &e)
	}
	return out, nil
}

func (v *EventStore) FindByRegistrant(ctx context.Context, userID int64) ([]*events.Event, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*events.Event
	for key := range v.s.registrations {
		if key.participantID == userID {
			if e, ok := v.s.events[key.eventID]; ok {
				e := e
				out = append(out, &e)
			}
		}
	}
	return out, nil
}

func (v *EventStore) Insert(ctx context.Context, e *events.Event) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.events[e.ID] = *e
	return nil
}

func (v *EventStore) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if e, ok := v.s.events[id]; ok {
		e.Description = description
		v.s.events[id] = e
	}
	return nil
}

func (v *EventStore) Delete(ctx context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.deleteEventLocked(id)
	return nil
}

func (v *EventStore) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	deleted := 0
	for id, e := range v.s.events {
		if e.Date.Before(before) {
			v.s.deleteEventLocked(id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *Store) deleteEventLocked(id uuid.UUID) {
	delete(s.events, id)
	for key := range s.registrations {
		if key.eventID == id {
			delete(s.registrations, key)
		}
	}
}

// RegistrationStore is the event registration view of the store.
type RegistrationStore struct{ s *Store }

func (v *RegistrationStore) Find(ctx context.Context, participantID int64, eventID uuid.UUID) (*events.EventRegistration, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	r, ok := v.s.registrations[regKey{participantID, eventID}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (v *RegistrationStore) FindAllByEvent(ctx context.Context, eventID uuid.UUID) ([]*events.EventRegistration, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*events.EventRegistration
	for _, r := range v.s.registrations {
		if r.EventID == eventID {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (v *RegistrationStore) FindAllByUser(ctx context.Context, userID int64) ([]*events.EventRegistration, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*events.EventRegistration
	for _, r := range v.s.registrations {
		if r.ParticipantID == userID {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (v *RegistrationStore) FindAll(ctx context.Context) ([]*events.EventRegistration, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	out := make([]*events.EventRegistration, 0, len(v.s.registrations))
	for _, r := range v.s.registrations {
		r := r
		out = append(out, &r)
	}
	return out, nil
}

func (v *RegistrationStore) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.countByEventLocked(eventID), nil
}

func (s *Store) countByEventLocked(eventID uuid.UUID) int {
	count := 0
	for _, r := range s.registrations {
		if r.EventID == eventID {
			count++
		}
	}
	return count
}

// Insert enforces the capacity and uniqueness invariants under the store
// lock, mirroring the SQL store's guarded transaction.
func (v *RegistrationStore) Insert(ctx context.Context, reg *events.EventRegistration) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	e, ok := v.s.events[reg.EventID]
	if !ok {
		return apperr.NotFound("event with id %s not found", reg.EventID)
	}
	if v.s.countByEventLocked(reg.EventID) >= e.MaxParticipants {
		return apperr.BadRequest("event is already full")
	}
	key := regKey{reg.ParticipantID, reg.EventID}
	if _, exists := v.s.registrations[key]; exists {
		return apperr.BadRequest("user is already registered for this event")
	}
	v.s.registrations[key] = *reg
	return nil
}

func (v *RegistrationStore) Delete(ctx context.Context, participantID int64, eventID uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	delete(v.s.registrations, regKey{participantID, eventID})
	return nil
}

// ReviewStore is the review view of the store.
type ReviewStore struct{ s *Store }

func (v *ReviewStore) Find(ctx context.Context, reviewerID int64, gameTitle string) (*review.Review, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	r, ok := v.s.reviews[reviewKey{reviewerID, gameTitle}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (v *ReviewStore) FindAllByReviewer(ctx context.Context, reviewerID int64) ([]*review.Review, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*review.Review
	for _, r := range v.s.reviews {
		if r.ReviewerID == reviewerID {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (v *ReviewStore) FindAllByGame(ctx context.Context, gameTitle string) ([]*review.Review, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*review.Review
	for _, r := range v.s.reviews {
		if r.GameTitle == gameTitle {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (v *ReviewStore) Insert(ctx context.Context, r *review.Review) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	key := reviewKey{r.ReviewerID, r.GameTitle}
	if _, exists := v.s.reviews[key]; exists {
		return apperr.Conflict("user %d already reviewed game %q", r.ReviewerID, r.GameTitle)
	}
	v.s.reviews[key] = *r
	return nil
}

func (v *ReviewStore) Delete(ctx context.Context, reviewerID int64, gameTitle string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	delete(v.s.reviews, reviewKey{reviewerID, gameTitle})
	return nil
}
