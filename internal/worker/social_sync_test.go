package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"

	"gofolio/internal/models"
	"gofolio/internal/storage"
	"gofolio/internal/tasks"
)

type memoryOnlyConn struct{}

func (memoryOnlyConn) UsingFallback() bool       { return true }
func (memoryOnlyConn) HasActiveConnection() bool { return false }

type captureEnqueuer struct {
	enqueued []*asynq.Task
}

func (c *captureEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	c.enqueued = append(c.enqueued, task)
	return &asynq.TaskInfo{}, nil
}

func newTestHandler(t *testing.T) (*SocialSyncHandler, *storage.UnifiedStorage, *captureEnqueuer) {
	t.Helper()
	facade := storage.NewUnifiedStorage(
		storage.NewMemStore(false),
		storage.NewMemStore(false),
		memoryOnlyConn{},
		slog.Default(),
	)
	client := &captureEnqueuer{}
	return NewSocialSyncHandler(facade, client, slog.Default()), facade, client
}

func TestHandleSyncAllFansOutPerProfile(t *testing.T) {
	ctx := context.Background()
	h, facade, client := newTestHandler(t)

	gh, err := facade.CreateSocialProfile(ctx, models.InsertSocialProfile{Platform: "github", Username: "x"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	li, err := facade.CreateSocialProfile(ctx, models.InsertSocialProfile{Platform: "linkedin", Username: "x"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	if err := h.HandleSyncAll(ctx, tasks.NewSocialSyncAllTask()); err != nil {
		t.Fatalf("handle sync all: %v", err)
	}

	if len(client.enqueued) != 2 {
		t.Fatalf("expected 2 enqueued tasks, got %d", len(client.enqueued))
	}

	wantIDs := map[int]bool{gh.ID: true, li.ID: true}
	var correlation string
	for _, task := range client.enqueued {
		if task.Type() != tasks.TypeSocialSync {
			t.Fatalf("task type = %q", task.Type())
		}
		var payload tasks.SocialSyncPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if !wantIDs[payload.ProfileID] {
			t.Fatalf("unexpected profile id %d", payload.ProfileID)
		}
		delete(wantIDs, payload.ProfileID)
		if payload.CorrelationID == "" {
			t.Fatal("empty correlation id")
		}
		if correlation == "" {
			correlation = payload.CorrelationID
		} else if payload.CorrelationID != correlation {
			t.Fatal("fan-out tasks must share one correlation id")
		}
	}
}

func TestHandleSyncStampsProfile(t *testing.T) {
	ctx := context.Background()
	h, facade, _ := newTestHandler(t)

	profile, err := facade.CreateSocialProfile(ctx, models.InsertSocialProfile{Platform: "github", Username: "x"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	task, err := tasks.NewSocialSyncTask(profile.ID, "corr-1")
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := h.HandleSync(ctx, task); err != nil {
		t.Fatalf("handle sync: %v", err)
	}

	after, err := facade.GetSocialProfile(ctx, profile.ID)
	if err != nil || after == nil {
		t.Fatalf("get profile: %v %v", after, err)
	}
	if after.LastSynced.IsZero() {
		t.Fatal("lastSynced not stamped")
	}
}

func TestHandleSyncToleratesVanishedProfile(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHandler(t)

	task, err := tasks.NewSocialSyncTask(999, "corr-2")
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := h.HandleSync(ctx, task); err != nil {
		t.Fatalf("a vanished profile should not fail the task: %v", err)
	}
}

func TestHandleSyncRejectsMalformedPayload(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newTestHandler(t)

	task := asynq.NewTask(tasks.TypeSocialSync, []byte("not json"))
	if err := h.HandleSync(ctx, task); err == nil {
		t.Fatal("expected a decode error")
	}
}
