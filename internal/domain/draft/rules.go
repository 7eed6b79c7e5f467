package draft

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyStarted      = errors.New("draft already started")
	ErrTooFewParticipants  = errors.New("not enough participants to start draft")
	ErrOddParticipantCount = errors.New("participant count must be even")
	ErrTooManyParticipants = errors.New("participant count exceeds league limit")
	ErrLeagueNotActive     = errors.New("league is not accepting picks")
	ErrDraftComplete       = errors.New("draft is complete")
	ErrNotYourTurn         = errors.New("not your turn to pick")
	ErrStalePickNumber     = errors.New("pick number is no longer current")
	ErrPlayerAlreadyTaken  = errors.New("player already drafted in this league")
	ErrConcurrentPick      = errors.New("pick was committed by a concurrent request")
)

// Rules stores draft validation parameters.
type Rules struct {
	Rounds          int
	MinParticipants int
}

func DefaultRules() Rules {
	return Rules{
		Rounds:          15,
		MinParticipants: 2,
	}
}

// ValidateParticipantCount checks the roster size against draft constraints:
// at least MinParticipants, an even count, and within the league limit.
func ValidateParticipantCount(count, leagueMax int, rules Rules) error {
	if count < rules.MinParticipants {
		return fmt.Errorf("%w: have %d, need at least %d", ErrTooFewParticipants, count, rules.MinParticipants)
	}
	if count%2 != 0 {
		return fmt.Errorf("%w: have %d", ErrOddParticipantCount, count)
	}
	if leagueMax > 0 && count > leagueMax {
		return fmt.Errorf("%w: have %d, limit %d", ErrTooManyParticipants, count, leagueMax)
	}

	return nil
}
