package notify

import "sync"

// Notification is one recorded message.
type Notification struct {
	Kind    Kind
	Message string
}

// Recorder is a Notifier that keeps every message it is shown. Used by tests
// to assert on the notifications a flow emits.
type Recorder struct {
	mu    sync.Mutex
	shown []Notification
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Show records the notification.
func (r *Recorder) Show(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, Notification{Kind: kind, Message: message})
}

// Notifications returns a copy of everything shown so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.shown))
	copy(out, r.shown)
	return out
}

// Reset discards recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = nil
}
