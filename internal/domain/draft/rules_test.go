package draft

import (
	"errors"
	"testing"
)

func TestValidateParticipantCount(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		name    string
		count   int
		max     int
		wantErr error
	}{
		{name: "valid minimum", count: 2, max: 10},
		{name: "valid full", count: 10, max: 10},
		{name: "too few", count: 1, max: 10, wantErr: ErrTooFewParticipants},
		{name: "zero", count: 0, max: 10, wantErr: ErrTooFewParticipants},
		{name: "odd", count: 5, max: 10, wantErr: ErrOddParticipantCount},
		{name: "over limit", count: 12, max: 10, wantErr: ErrTooManyParticipants},
		{name: "no limit configured", count: 12, max: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateParticipantCount(tc.count, tc.max, rules)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}
