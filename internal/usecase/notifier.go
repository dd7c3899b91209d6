package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"go-recruitment-console/internal/domain"
)

// RecordingNotifier keeps notifications in memory.
type RecordingNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (n *RecordingNotifier) Success(message string) {
	n.add(domain.NotifySuccess, message)
}

func (n *RecordingNotifier) Error(message string) {
	n.add(domain.NotifyError, message)
}

func (n *RecordingNotifier) add(level domain.NotificationLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, domain.Notification{Level: level, Message: message})
}

func (n *RecordingNotifier) Notifications() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// Take returns the recorded notifications and forgets them.
func (n *RecordingNotifier) Take() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.notifications
	n.notifications = nil
	return out
}

// FlashNotifier queues notifications in the session so they survive a
// redirect and show on the next rendered page. Without a store it only
// records.
type FlashNotifier struct {
	RecordingNotifier
	store     domain.SessionStore
	sessionID string
}

func NewFlashNotifier(store domain.SessionStore, sessionID string) *FlashNotifier {
	return &FlashNotifier{store: store, sessionID: sessionID}
}

// Flush appends pending notifications to the stored flash list.
func (n *FlashNotifier) Flush(ctx context.Context) error {
	if n.store == nil {
		return nil
	}
	pending := n.Take()
	if len(pending) == 0 {
		return nil
	}

	stored, err := n.load(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(append(stored, pending...))
	if err != nil {
		return err
	}
	return n.store.Set(ctx, n.sessionID, domain.SessionKeyFlash, string(payload))
}

// Drain returns stored and pending notifications and clears both.
func (n *FlashNotifier) Drain(ctx context.Context) ([]domain.Notification, error) {
	stored, err := n.load(ctx)
	if err != nil {
		return n.Take(), err
	}
	if len(stored) > 0 {
		if err := n.store.Delete(ctx, n.sessionID, domain.SessionKeyFlash); err != nil {
			return append(stored, n.Take()...), err
		}
	}
	return append(stored, n.Take()...), nil
}

func (n *FlashNotifier) load(ctx context.Context) ([]domain.Notification, error) {
	if n.store == nil {
		return nil, nil
	}
	raw, ok, err := n.store.Get(ctx, n.sessionID, domain.SessionKeyFlash)
	if err != nil || !ok {
		return nil, err
	}
	var stored []domain.Notification
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, nil
	}
	return stored, nil
}
