package models

import "time"

type PitchEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type EventRegistration struct {
	UserID  string    `json:"userId"`
	EventID string    `json:"eventId"`
	Date    time.Time `json:"date"`
}

type ActivityLog struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
