package services

import (
	"testing"
	"time"

	"main/model"
)

func TestNotificationPushAndAutoExpire(t *testing.T) {
	q := NewNotificationQueue(50 * time.Millisecond)
	defer q.Close()

	n := q.Push("Saved", model.SeveritySuccess)

	active := q.Active()
	if len(active) != 1 || active[0].ID != n.ID {
		t.Fatalf("notification not visible immediately after push: %+v", active)
	}
	if active[0].Severity != model.SeveritySuccess {
		t.Errorf("severity = %q, want success", active[0].Severity)
	}

	// Wait out the display duration; the notification removes itself
	deadline := time.After(2 * time.Second)
	for len(q.Active()) != 0 {
		select {
		case <-deadline:
			t.Fatal("notification never expired")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestNotificationDismiss(t *testing.T) {
	q := NewNotificationQueue(time.Minute)
	defer q.Close()

	first := q.Push("first", model.SeverityInfo)
	second := q.Push("second", model.SeverityError)

	q.Dismiss(first.ID)

	active := q.Active()
	if len(active) != 1 || active[0].ID != second.ID {
		t.Errorf("dismiss removed the wrong notification: %+v", active)
	}

	// Dismissing an unknown id is harmless
	q.Dismiss("missing")
	if len(q.Active()) != 1 {
		t.Error("dismissing an unknown id changed the queue")
	}
}

func TestNotificationInsertionOrder(t *testing.T) {
	q := NewNotificationQueue(time.Minute)
	defer q.Close()

	q.Push("one", model.SeverityInfo)
	q.Push("two", model.SeverityInfo)
	q.Push("three", model.SeverityInfo)

	active := q.Active()
	want := []string{"one", "two", "three"}
	for i, msg := range want {
		if active[i].Message != msg {
			t.Errorf("active[%d].Message = %q, want %q", i, active[i].Message, msg)
		}
	}
}

func TestNotificationTimersAreIndependent(t *testing.T) {
	q := NewNotificationQueue(80 * time.Millisecond)
	defer q.Close()

	q.Push("early", model.SeverityInfo)
	time.Sleep(50 * time.Millisecond)
	late := q.Push("late", model.SeverityInfo)

	// After the first TTL elapses only the early notification is gone
	time.Sleep(50 * time.Millisecond)
	active := q.Active()
	if len(active) != 1 || active[0].ID != late.ID {
		t.Errorf("timers are not independent: %+v", active)
	}
}

func TestNotificationOnChange(t *testing.T) {
	q := NewNotificationQueue(time.Minute)
	defer q.Close()

	fired := 0
	q.SetOnChange(func() { fired++ })

	n := q.Push("one", model.SeverityInfo)
	if fired != 1 {
		t.Errorf("onChange fired %d times after push, want 1", fired)
	}

	q.Dismiss(n.ID)
	if fired != 2 {
		t.Errorf("onChange fired %d times after dismiss, want 2", fired)
	}
}
