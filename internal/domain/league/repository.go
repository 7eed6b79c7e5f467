package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, l FantasyLeague) error
	GetByID(ctx context.Context, leagueID string) (FantasyLeague, bool, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (FantasyLeague, bool, error)
	ListByUser(ctx context.Context, userID string) ([]FantasyLeague, error)
	SetDraftComplete(ctx context.Context, leagueID string) error
}
