package models

import "time"

// NoticeLevel classifies a user-visible notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a toast-style message produced by a mutation.
type Notice struct {
	ID        string      `json:"id"`
	Level     NoticeLevel `json:"level"`
	Resource  string      `json:"resource"`
	Action    string      `json:"action"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}
