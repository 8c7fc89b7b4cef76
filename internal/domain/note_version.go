package domain

import "time"

// VersionRecord is an append-only log entry of one update. Changes holds
// the raw submitted fragment, not the merged content. AuthorName is
// resolved when the record is written; usernames are immutable after
// signup.
type VersionRecord struct {
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Timestamp  time.Time `json:"timestamp"`
	Changes    string    `json:"changes"`
}

type VersionResponse struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Changes   string    `json:"changes"`
}
