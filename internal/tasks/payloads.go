package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants keep queue producers and consumers in agreement.
const (
	TypeSocialSyncAll = "social:sync_all"
	TypeSocialSync    = "social:sync"
)

// SocialSyncPayload identifies one profile to refresh.
type SocialSyncPayload struct {
	ProfileID     int    `json:"profile_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewSocialSyncAllTask builds the fan-out task that refreshes every profile.
func NewSocialSyncAllTask() *asynq.Task {
	return asynq.NewTask(TypeSocialSyncAll, nil)
}

// NewSocialSyncTask builds a refresh task for a single profile.
func NewSocialSyncTask(profileID int, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SocialSyncPayload{
		ProfileID:     profileID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSocialSync, payload), nil
}
