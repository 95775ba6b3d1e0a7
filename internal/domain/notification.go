package domain

import "time"

type NotificationType string

const (
	NotifBookingCreated      NotificationType = "booking_created"
	NotifBookingApproved     NotificationType = "booking_approved"
	NotifBookingRejected     NotificationType = "booking_rejected"
	NotifBookingCanceled     NotificationType = "booking_canceled"
	NotifApplicationReceived NotificationType = "application_received"
	NotifApplicationApproved NotificationType = "application_approved"
	NotifApplicationRejected NotificationType = "application_rejected"
)

// Notification carries an advisory human-readable message after a workflow
// action. Purely informational: losing one never fails the action.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
