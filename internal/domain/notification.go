package domain

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// Notifier surfaces transient, user-facing messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}
