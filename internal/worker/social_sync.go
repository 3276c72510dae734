package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"gofolio/internal/storage"
	"gofolio/internal/tasks"
)

// taskEnqueuer is the slice of the asynq client the fan-out handler needs.
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// SocialSyncHandler refreshes social profile sync timestamps through the
// storage facade, so the refresh lands wherever the facade is writing.
type SocialSyncHandler struct {
	store  *storage.UnifiedStorage
	client taskEnqueuer
	logger *slog.Logger
}

// NewSocialSyncHandler constructs the handler.
func NewSocialSyncHandler(store *storage.UnifiedStorage, client taskEnqueuer, logger *slog.Logger) *SocialSyncHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SocialSyncHandler{
		store:  store,
		client: client,
		logger: logger,
	}
}

// HandleSyncAll fans out one refresh task per stored profile.
func (h *SocialSyncHandler) HandleSyncAll(ctx context.Context, _ *asynq.Task) error {
	profiles, err := h.store.GetAllSocialProfiles(ctx)
	if err != nil {
		return fmt.Errorf("list social profiles: %w", err)
	}

	correlationID := uuid.NewString()
	for _, p := range profiles {
		task, err := tasks.NewSocialSyncTask(p.ID, correlationID)
		if err != nil {
			return fmt.Errorf("build sync task for profile %d: %w", p.ID, err)
		}
		if _, err := h.client.EnqueueContext(ctx, task); err != nil {
			return fmt.Errorf("enqueue sync for profile %d: %w", p.ID, err)
		}
	}

	h.logger.Info("social sync fan-out enqueued",
		slog.Int("profiles", len(profiles)),
		slog.String("correlation_id", correlationID),
	)
	return nil
}

// HandleSync refreshes one profile's lastSynced stamp.
func (h *SocialSyncHandler) HandleSync(ctx context.Context, t *asynq.Task) error {
	var payload tasks.SocialSyncPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	profile, err := h.store.SyncSocialProfile(ctx, payload.ProfileID)
	if err != nil {
		return fmt.Errorf("sync profile %d: %w", payload.ProfileID, err)
	}
	if profile == nil {
		// profile removed since the fan-out; nothing to do
		h.logger.Warn("social profile vanished before sync",
			slog.Int("profile_id", payload.ProfileID),
			slog.String("correlation_id", payload.CorrelationID),
		)
		return nil
	}

	h.logger.Info("social profile synced",
		slog.Int("profile_id", profile.ID),
		slog.String("platform", profile.Platform),
		slog.String("correlation_id", payload.CorrelationID),
	)
	return nil
}
