package league

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

type DraftStatus string

const (
	DraftNotStarted DraftStatus = "not_started"
	DraftInProgress DraftStatus = "in_progress"
	DraftComplete   DraftStatus = "complete"
)

// FantasyLeague is one draft league instance owned by a user.
type FantasyLeague struct {
	ID              string
	Name            string
	OwnerUserID     string
	Status          Status
	DraftStatus     DraftStatus
	DraftStarted    bool
	MaxParticipants int
	DraftRounds     int
	InviteCode      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (l FantasyLeague) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.OwnerUserID == "" {
		return fmt.Errorf("league owner is required")
	}
	if l.MaxParticipants < 2 {
		return fmt.Errorf("league max participants must be >= 2")
	}
	if l.DraftRounds < 1 {
		return fmt.Errorf("league draft rounds must be >= 1")
	}

	return nil
}

// Joinable reports whether new participants may still enroll.
func (l FantasyLeague) Joinable() bool {
	return !l.DraftStarted && (l.Status == StatusPending || l.Status == StatusActive)
}
