// internal/collection/domain.go
package collection

import "gameshelf/internal/apperr"

// CopyStatus is the lifecycle state of one physical game copy.
type CopyStatus string

const (
	StatusAvailable CopyStatus = "AVAILABLE"
	StatusBorrowed  CopyStatus = "BORROWED"
	StatusDamaged   CopyStatus = "DAMAGED"
)

// ParseCopyStatus validates a raw status string.
func ParseCopyStatus(s string) (CopyStatus, error) {
	switch CopyStatus(s) {
	case StatusAvailable, StatusBorrowed, StatusDamaged:
		return CopyStatus(s), nil
	default:
		return "", apperr.BadRequest("invalid game status: %s", s)
	}
}

// GameCopy is a physical copy of a cataloged game. Its identity is the
// (owner, game title) pair; a user owns at most one copy per title.
type GameCopy struct {
	OwnerID     int64      `json:"owner_id"`
	GameTitle   string     `json:"game_title"`
	Description string     `json:"description"`
	Status      CopyStatus `json:"status"`
}
