// internal/review/domain.go
package review

import "time"

// Review is one user's verdict on one game. The (reviewer, game) pair is its
// identity, so a user reviews a game at most once. Rating runs 1 through 5.
type Review struct {
	ReviewerID int64     `json:"reviewer_id"`
	GameTitle  string    `json:"game_title"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
}
