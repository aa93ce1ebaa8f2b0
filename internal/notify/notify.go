package notify

// Kind classifies a transient user-facing message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notifier is a fire-and-forget sink for transient user-facing messages,
// the equivalent of the storefront's toast popups. Callers never await or
// inspect the outcome.
type Notifier interface {
	Show(kind Kind, message string)
}
