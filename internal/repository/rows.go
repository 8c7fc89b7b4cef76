package repository

import (
	"fmt"

	"noteshare-server/internal/domain"
)

// rowScanner is the slice of the kivik result set the scan helpers need.
type rowScanner interface {
	Next() bool
	ScanDoc(dest interface{}) error
	Err() error
}

// scanNotes drains a result set of note documents. A document that fails
// to scan aborts the whole listing so callers never see a silently
// truncated result.
func scanNotes(rows rowScanner) ([]*domain.Note, error) {
	var notes []*domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.ScanDoc(&note); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// scanShareNoteIDs drains a result set of shared-access documents into
// the note IDs they grant.
func scanShareNoteIDs(rows rowScanner) ([]string, error) {
	var noteIDs []string
	for rows.Next() {
		var share domain.SharedAccess
		if err := rows.ScanDoc(&share); err != nil {
			return nil, fmt.Errorf("failed to scan shared access: %w", err)
		}
		noteIDs = append(noteIDs, share.NoteID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shared access: %w", err)
	}

	return noteIDs, nil
}
