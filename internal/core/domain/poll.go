package domain

import (
	"time"

	"github.com/google/uuid"
)

// Poll is a question with a fixed set of options and an index-aligned
// tally: Tally[i] is the number of votes cast for Options[i].
type Poll struct {
	ID        uuid.UUID     `json:"id"`
	Question  string        `json:"question"`
	Options   []string      `json:"options"`
	Tally     []int         `json:"tally"`
	Voters    []VoterRecord `json:"voters"`
	CreatedBy uuid.UUID     `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// VoterRecord is the durable fact that a user cast a vote for one option.
// A user appears at most once per poll.
type VoterRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	Choice    int       `json:"choice"`
	CreatedAt time.Time `json:"created_at"`
}

// TotalVotes returns the sum of the tally, which always equals the number
// of voter records.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, n := range p.Tally {
		total += n
	}
	return total
}

// HasVoted reports whether the given user already has a voter record.
func (p *Poll) HasVoted(userID uuid.UUID) bool {
	for _, v := range p.Voters {
		if v.UserID == userID {
			return true
		}
	}
	return false
}
