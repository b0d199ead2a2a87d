package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/toast/toasttest"
)

// mockNotifier records notifications for testing.
type mockNotifier struct {
	notifications []Notification
	closed        []uint32
	nextID        uint32
	failNotify    bool
}

func (m *mockNotifier) Notify(n Notification) (uint32, error) {
	if m.failNotify {
		return 0, errors.New("bus gone")
	}
	m.notifications = append(m.notifications, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *mockNotifier) Close(id uint32) error {
	m.closed = append(m.closed, id)
	return nil
}

func newMirroredQueue(t *testing.T) (*toast.Queue, *toasttest.Scheduler, *mockNotifier, *Mirror) {
	t.Helper()
	sched := toasttest.NewScheduler()
	q := toast.New(sched, toast.WithRemoveDelay(time.Second))
	mock := &mockNotifier{}
	m := NewMirror(mock, nil)
	q.Subscribe(m.Observe)
	return q, sched, mock, m
}

func TestMirror_SendsNewToasts(t *testing.T) {
	q, _, mock, m := newMirroredQueue(t)

	q.Add(toast.Toast{Title: "Saved", Description: "3 files written"})
	q.Add(toast.Toast{Title: "Failed", Variant: toast.VariantDestructive})

	require.Len(t, mock.notifications, 2)
	assert.Equal(t, "Saved", mock.notifications[0].Title)
	assert.Equal(t, "3 files written", mock.notifications[0].Body)
	assert.Equal(t, UrgencyNormal, mock.notifications[0].Urgency)
	assert.Equal(t, UrgencyCritical, mock.notifications[1].Urgency)
	assert.Equal(t, 2, m.Tracked())
}

func TestMirror_DoesNotResendUnchanged(t *testing.T) {
	q, _, mock, _ := newMirroredQueue(t)

	q.Add(toast.Toast{ID: "a", Title: "Saved"})
	q.Add(toast.Toast{ID: "b", Title: "Other"})

	assert.Len(t, mock.notifications, 2, "adding b must not resend a")
}

func TestMirror_ReplacesOnUpdate(t *testing.T) {
	q, _, mock, _ := newMirroredQueue(t)

	h := q.Add(toast.Toast{Title: "Uploading"})
	h.Update(toast.Patch{}.WithTitle("Uploaded"))

	require.Len(t, mock.notifications, 2)
	assert.Equal(t, "Uploaded", mock.notifications[1].Title)
	assert.Equal(t, uint32(1), mock.notifications[1].ReplacesID)
}

func TestMirror_ClosesOnDismiss(t *testing.T) {
	q, sched, mock, m := newMirroredQueue(t)

	h := q.Add(toast.Toast{Title: "Saved"})
	h.Dismiss()

	assert.Equal(t, []uint32{1}, mock.closed)
	assert.Equal(t, 0, m.Tracked())

	sched.Advance(time.Second)
	assert.Equal(t, []uint32{1}, mock.closed, "removal after dismissal closes nothing new")
}

func TestMirror_ClosesOnClear(t *testing.T) {
	q, _, mock, _ := newMirroredQueue(t)

	q.Add(toast.Toast{Title: "one"})
	q.Add(toast.Toast{Title: "two"})
	q.Remove("")

	assert.ElementsMatch(t, []uint32{1, 2}, mock.closed)
}

func TestMirror_NotifyErrorIsRetried(t *testing.T) {
	q, _, mock, m := newMirroredQueue(t)

	mock.failNotify = true
	q.Add(toast.Toast{ID: "a", Title: "Saved"})
	assert.Equal(t, 0, m.Tracked())

	mock.failNotify = false
	q.Add(toast.Toast{ID: "b", Title: "Other"})
	assert.Equal(t, 2, m.Tracked(), "a is sent on the next state change")
}

func TestToNotification_TitleFallback(t *testing.T) {
	n := toNotification(toast.Toast{Description: "body only"})
	assert.Equal(t, "body only", n.Title)
	assert.Empty(t, n.Body)

	n = toNotification(toast.Toast{})
	assert.Equal(t, "Notification", n.Title)
	assert.Equal(t, int32(-1), n.Timeout)
}
