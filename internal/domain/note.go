package domain

import "time"

// TimestampLayout is the display format for note timestamps, always UTC.
const TimestampLayout = "2006-01-02, 15:04 UTC"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Note is a titled text document owned by one user. Version records are
// embedded in the note document so that appending a version and changing
// the content persist in a single write.
type Note struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Versions  []VersionRecord `json:"versions"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required,max=1000"`
}

type CreateNoteResponse struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// NoteSummary is the projection returned by the list endpoint.
type NoteSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type NoteDetailResponse struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type UpdateNoteResponse struct {
	Title          string `json:"title"`
	UpdatedContent string `json:"updated_content"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type ShareNoteRequest struct {
	NoteID    string   `json:"note_id" validate:"required"`
	Usernames []string `json:"usernames" validate:"required,min=1"`
}
