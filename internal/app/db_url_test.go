package app

import "testing"

func TestNormalizeDBURL(t *testing.T) {
	raw := "postgres://u:p@localhost:5432/futdrafts?sslmode=disable"

	got := normalizeDBURL(raw, true)
	if got == raw {
		t.Fatalf("expected disable_prepared_binary_result to be appended, got %q", got)
	}

	if got := normalizeDBURL(raw, false); got != raw {
		t.Fatalf("expected url unchanged when flag is off, got %q", got)
	}
}

func TestDBNameFromURL(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"postgres://u:p@localhost:5432/futdrafts?sslmode=disable", "futdrafts"},
		{"host=localhost dbname=futdrafts sslmode=disable", "futdrafts"},
		{"postgres://u:p@localhost:5432", ""},
	}
	for _, tc := range cases {
		if got := dbNameFromURL(tc.raw); got != tc.want {
			t.Fatalf("dbNameFromURL(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
