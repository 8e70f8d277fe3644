package chatlog

import (
	"context"
	"testing"
)

type memChatLogRepo struct {
	logs   []*ChatLog
	nextID uint
}

func (r *memChatLogRepo) Create(ctx context.Context, log *ChatLog) error {
	r.nextID++
	log.ID = r.nextID
	r.logs = append(r.logs, log)
	return nil
}

func (r *memChatLogRepo) FindByFilter(ctx context.Context, filter ChatLogFilter) ([]*ChatLog, error) {
	var out []*ChatLog
	for _, log := range r.logs {
		if filter.UserID != nil && log.UserID != *filter.UserID {
			continue
		}
		if filter.Subject != nil && log.Subject != *filter.Subject {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

func TestHistoryChronologicalOrder(t *testing.T) {
	ctx := context.Background()
	repo := &memChatLogRepo{}
	svc := NewService(repo)

	for _, msg := range []string{"first", "second", "third"} {
		if err := svc.Record(ctx, &ChatLog{UserID: 1, Subject: "Matematika", UserMessage: msg}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	_ = svc.Record(ctx, &ChatLog{UserID: 2, Subject: "Matematika", UserMessage: "other user"})

	logs, err := svc.History(ctx, 1, nil)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("History() returned %d logs, want 3", len(logs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if logs[i].UserMessage != want {
			t.Errorf("logs[%d].UserMessage = %q, want %q", i, logs[i].UserMessage, want)
		}
	}
}

func TestHistoryFiltersBySubject(t *testing.T) {
	ctx := context.Background()
	repo := &memChatLogRepo{}
	svc := NewService(repo)

	_ = svc.Record(ctx, &ChatLog{UserID: 1, Subject: "Matematika", UserMessage: "math"})
	_ = svc.Record(ctx, &ChatLog{UserID: 1, Subject: "Fisika", UserMessage: "physics"})

	subject := "Fisika"
	logs, err := svc.History(ctx, 1, &subject)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(logs) != 1 || logs[0].UserMessage != "physics" {
		t.Errorf("History(Fisika) = %+v, want the single physics log", logs)
	}
}
