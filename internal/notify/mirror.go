package notify

import (
	"go.uber.org/zap"

	"github.com/llehouerou/toaster/internal/errmsg"
	"github.com/llehouerou/toaster/internal/toast"
)

type sent struct {
	id    uint32
	title string
	body  string
}

// Mirror is a queue observer that keeps desktop notifications in step with
// the open toasts: new toasts are sent, edited ones replaced, and closed or
// removed ones closed. It never dispatches back into the queue.
type Mirror struct {
	notifier Notifier
	log      *zap.Logger
	sent     map[string]sent
}

// NewMirror creates a mirror sending through n.
func NewMirror(n Notifier, log *zap.Logger) *Mirror {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mirror{
		notifier: n,
		log:      log,
		sent:     make(map[string]sent),
	}
}

// Observe implements toast.Observer.
func (m *Mirror) Observe(s toast.State) {
	open := make(map[string]struct{}, s.Len())

	for _, t := range s.Toasts {
		if !t.Open {
			continue
		}
		open[t.ID] = struct{}{}

		prev, ok := m.sent[t.ID]
		if ok && prev.title == t.Title && prev.body == t.Description {
			continue
		}

		n := toNotification(t)
		if ok {
			n.ReplacesID = prev.id
		}
		id, err := m.notifier.Notify(n)
		if err != nil {
			m.log.Warn(errmsg.Format(errmsg.OpDesktopNotify, err), zap.String("toast", t.ID))
			continue
		}
		m.sent[t.ID] = sent{id: id, title: t.Title, body: t.Description}
	}

	for toastID, prev := range m.sent {
		if _, ok := open[toastID]; ok {
			continue
		}
		delete(m.sent, toastID)
		if prev.id == 0 {
			continue
		}
		if err := m.notifier.Close(prev.id); err != nil {
			m.log.Debug(errmsg.Format(errmsg.OpDesktopClose, err), zap.String("toast", toastID))
		}
	}
}

// Tracked returns the number of toasts currently mirrored.
func (m *Mirror) Tracked() int {
	return len(m.sent)
}

func toNotification(t toast.Toast) Notification {
	title := t.Title
	body := t.Description
	if title == "" {
		title, body = body, ""
	}
	if title == "" {
		title = "Notification"
	}

	urgency := UrgencyNormal
	if t.Variant == toast.VariantDestructive {
		urgency = UrgencyCritical
	}

	return Notification{
		Title:   title,
		Body:    body,
		Timeout: -1,
		Urgency: urgency,
	}
}
