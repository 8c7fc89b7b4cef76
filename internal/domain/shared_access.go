package domain

import "time"

// SharedAccess grants the grantee read and update rights on a note. It
// never grants ownership or re-share rights. Unique per (note, grantee).
type SharedAccess struct {
	NoteID    string    `json:"note_id"`
	GranteeID string    `json:"grantee_id"`
	CreatedAt time.Time `json:"created_at"`
}
