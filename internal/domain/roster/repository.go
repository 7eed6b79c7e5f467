package roster

import "context"

// Repository exposes league-membership persistence operations.
type Repository interface {
	Create(ctx context.Context, p Participant) error
	GetByID(ctx context.Context, participantID string) (Participant, bool, error)
	GetByLeagueAndUser(ctx context.Context, leagueID, userID string) (Participant, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Participant, error)
	CountByLeague(ctx context.Context, leagueID string) (int, error)
}
