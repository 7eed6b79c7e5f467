package roster

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
)

// Participant is one user enrolled in one league.
//
// DraftPosition is nil until the draft starts; it is assigned exactly once
// and never mutated afterwards.
type Participant struct {
	ID            string
	LeagueID      string
	UserID        string
	Role          Role
	Status        Status
	DraftPosition *int
	JoinedAt      time.Time
}
