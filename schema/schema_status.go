package schema

import "time"

// Link is a named share query persisted by the link store.
type Link struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Query   string    `json:"query"`
	SavedAt time.Time `json:"saved_at"`
}

// LinkStatus represents the status of the link store.
type LinkStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalLinks     int       `json:"total_links"`
	LastSavedTime  time.Time `json:"last_saved_time"`
	OldestSaveTime time.Time `json:"oldest_save_time"`
}
