package promptcache

import (
	"context"
	"testing"
	"time"
)

type memEntryRepo struct {
	entries []*Entry
}

func (r *memEntryRepo) Insert(ctx context.Context, entry *Entry) error {
	entry.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memEntryRepo) FindLive(ctx context.Context, fingerprint string, now time.Time) (*Entry, error) {
	var found *Entry
	for _, e := range r.entries {
		if e.Fingerprint != fingerprint || !e.ExpiresAt.After(now) {
			continue
		}
		if found == nil || e.CreatedAt.After(found.CreatedAt) {
			found = e
		}
	}
	return found, nil
}

func TestFingerprintDiffers(t *testing.T) {
	base := Fingerprint("apa itu gravitasi", "IPA", "SD")

	tests := []struct {
		name       string
		query      string
		subject    string
		gradeLevel string
		wantEqual  bool
	}{
		{name: "same triple", query: "apa itu gravitasi", subject: "IPA", gradeLevel: "SD", wantEqual: true},
		{name: "different query", query: "apa itu gaya", subject: "IPA", gradeLevel: "SD"},
		{name: "different subject", query: "apa itu gravitasi", subject: "MATEMATIKA", gradeLevel: "SD"},
		{name: "different grade level", query: "apa itu gravitasi", subject: "IPA", gradeLevel: "SMP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.query, tt.subject, tt.gradeLevel)
			if (got == base) != tt.wantEqual {
				t.Errorf("Fingerprint() = %s, base = %s, wantEqual = %v", got, base, tt.wantEqual)
			}
		})
	}
}

func TestLookupAfterStore(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memEntryRepo{}, 24*time.Hour)

	if _, ok, _ := svc.Lookup(ctx, "apa itu gravitasi", "IPA", "SD"); ok {
		t.Fatal("Lookup() on empty cache returned a hit")
	}

	if err := svc.Store(ctx, "apa itu gravitasi", "gravitasi adalah gaya tarik bumi", "IPA", "SD"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	resp, ok, err := svc.Lookup(ctx, "apa itu gravitasi", "IPA", "SD")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !ok {
		t.Fatal("Lookup() miss after Store()")
	}
	if resp != "gravitasi adalah gaya tarik bumi" {
		t.Errorf("Lookup() = %q", resp)
	}

	// same query, different grade level stays a miss
	if _, ok, _ := svc.Lookup(ctx, "apa itu gravitasi", "IPA", "SMP"); ok {
		t.Error("Lookup() hit across grade level boundary")
	}
}

func TestLookupSkipsExpired(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memEntryRepo{}, 24*time.Hour)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }
	if err := svc.Store(ctx, "q", "r", "IPA", "SD"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	svc.nowFunc = func() time.Time { return now.Add(25 * time.Hour) }
	if _, ok, _ := svc.Lookup(ctx, "q", "IPA", "SD"); ok {
		t.Error("Lookup() returned an expired entry")
	}

	svc.nowFunc = func() time.Time { return now.Add(23 * time.Hour) }
	if _, ok, _ := svc.Lookup(ctx, "q", "IPA", "SD"); !ok {
		t.Error("Lookup() missed a live entry")
	}
}

func TestLookupPrefersMostRecent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memEntryRepo{}, 24*time.Hour)

	now := time.Now()
	svc.nowFunc = func() time.Time { return now }
	_ = svc.Store(ctx, "q", "old", "IPA", "SD")
	svc.nowFunc = func() time.Time { return now.Add(time.Hour) }
	_ = svc.Store(ctx, "q", "new", "IPA", "SD")

	resp, ok, _ := svc.Lookup(ctx, "q", "IPA", "SD")
	if !ok || resp != "new" {
		t.Errorf("Lookup() = %q, %v, want most recent entry", resp, ok)
	}
}
