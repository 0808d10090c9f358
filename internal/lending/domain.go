// internal/lending/domain.go
package lending

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the state of a borrow request. PENDING transitions exactly
// once, to either ACCEPTED or DECLINED; both are terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

// BorrowRequest is a borrower's request to use another user's game copy over
// an inclusive date window. DecisionDate is nil exactly while the request is
// PENDING.
type BorrowRequest struct {
	ID           uuid.UUID     `json:"id"`
	Status       RequestStatus `json:"status"`
	RequestDate  time.Time     `json:"request_date"`
	DecisionDate *time.Time    `json:"decision_date,omitempty"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	BorrowerID   int64         `json:"borrower_id"`
	OwnerID      int64         `json:"owner_id"`
	GameTitle    string        `json:"game_title"`
}

// toDate strips the time-of-day component; window checks are date-only.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CoversDate reports whether day falls inside [StartDate, EndDate], both ends
// inclusive, comparing dates only.
func (r *BorrowRequest) CoversDate(day time.Time) bool {
	d := toDate(day)
	return !d.Before(toDate(r.StartDate)) && !d.After(toDate(r.EndDate))
}
