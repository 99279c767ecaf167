package core

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// newTestHasher uses the minimum bcrypt cost so tests do not pay for the
// production work factor.
func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func seedUsers(ctx context.Context, t *testing.T, auth Auth, creds ...[2]string) {
	for _, c := range creds {
		if _, err := auth.Register(ctx, c[0], c[1]); err != nil {
			t.Fatal(err)
		}
	}
}

func seedEntries(f *ScheduleFixture, entries ...ScheduleEntry) []ScheduleEntry {
	seeded := make([]ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		created, err := f.scheduleStore.CreateEntry(f.ctx, e)
		if err != nil {
			f.t.Fatal(err)
		}
		seeded = append(seeded, *created)
	}
	return seeded
}
