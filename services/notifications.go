package services

import (
	"sync"
	"time"

	"main/model"
	"main/utils"
)

// DefaultNotificationTTL matches the toast display duration in the UI
const DefaultNotificationTTL = 4 * time.Second

// NotificationQueue holds a session's transient user-facing messages in
// insertion order. Each notification runs its own expiry timer from its own
// creation time; bursts simply stack, there is no cap.
type NotificationQueue struct {
	mu            sync.Mutex
	notifications []*model.Notification
	timers        map[string]*time.Timer
	ttl           time.Duration

	// onChange fires after a push, dismissal, or expiry
	onChange func()
}

func NewNotificationQueue(ttl time.Duration) *NotificationQueue {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &NotificationQueue{
		notifications: []*model.Notification{},
		timers:        make(map[string]*time.Timer),
		ttl:           ttl,
	}
}

func (q *NotificationQueue) SetOnChange(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onChange = fn
}

// Push appends a new notification and arms its expiry timer
func (q *NotificationQueue) Push(message string, severity model.NotificationSeverity) *model.Notification {
	notification := &model.Notification{
		ID:        utils.GenerateID(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	q.notifications = append(q.notifications, notification)
	q.timers[notification.ID] = time.AfterFunc(q.ttl, func() {
		q.expire(notification.ID)
	})
	fn := q.onChange
	q.mu.Unlock()

	if fn != nil {
		fn()
	}
	return notification
}

// Dismiss removes a notification immediately, regardless of its timer
func (q *NotificationQueue) Dismiss(id string) {
	q.mu.Lock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
	}
	removed := q.removeLocked(id)
	fn := q.onChange
	q.mu.Unlock()

	if removed && fn != nil {
		fn()
	}
}

// Active returns the queue contents in insertion order
func (q *NotificationQueue) Active() []*model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	active := make([]*model.Notification, len(q.notifications))
	copy(active, q.notifications)
	return active
}

// Close stops every pending timer. Used on session teardown.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, timer := range q.timers {
		timer.Stop()
	}
	q.timers = make(map[string]*time.Timer)
	q.notifications = []*model.Notification{}
}

func (q *NotificationQueue) expire(id string) {
	q.mu.Lock()
	removed := q.removeLocked(id)
	fn := q.onChange
	q.mu.Unlock()

	if removed && fn != nil {
		fn()
	}
}

func (q *NotificationQueue) removeLocked(id string) bool {
	delete(q.timers, id)
	for i, n := range q.notifications {
		if n.ID == id {
			q.notifications = append(q.notifications[:i], q.notifications[i+1:]...)
			return true
		}
	}
	return false
}
