package testutil

import "time"

// NowAt builds a now() replacement pinned to a single instant, for
// services that take an injectable clock.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp, panicking on malformed
// input. Fixture timestamps are literals, so a parse failure is a bug
// in the test itself.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
