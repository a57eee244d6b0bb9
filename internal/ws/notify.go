package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	EventUserSkillAdded   = "user_skill_added"
	EventUserSkillRemoved = "user_skill_removed"
)

type UserSkillEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	SkillID   uuid.UUID `json:"skill_id,omitzero"`
	Timestamp string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyUserSkill broadcasts a skill association change to all event-stream
// subscribers. A nil default hub makes this a no-op.
func NotifyUserSkill(eventType string, userID, skillID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := UserSkillEvent{
		Type:      eventType,
		UserID:    userID,
		SkillID:   skillID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
