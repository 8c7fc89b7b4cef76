package repository

import (
	"context"
	"fmt"
	"net/http"

	"noteshare-server/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

type ShareRepository interface {
	Create(share *domain.SharedAccess) error
	Exists(noteID, granteeID string) (bool, error)
	ListNoteIDs(granteeID string) ([]string, error)
}

type shareRepository struct {
	client *kivik.Client
	dbName string
}

func NewShareRepository(client *kivik.Client, dbName string) ShareRepository {
	return &shareRepository{
		client: client,
		dbName: dbName,
	}
}

// Create stores a grant under a deterministic document ID, which makes the
// (note, grantee) pair unique. A conflict means the grant already exists
// and is treated as success.
func (r *shareRepository) Create(share *domain.SharedAccess) error {
	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("share:%s:%s", share.NoteID, share.GranteeID)
	_, err := db.Put(context.Background(), docID, share)
	if err != nil {
		if kivik.HTTPStatus(err) == http.StatusConflict {
			return nil
		}
		return fmt.Errorf("failed to create shared access: %w", err)
	}

	return nil
}

func (r *shareRepository) Exists(noteID, granteeID string) (bool, error) {
	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("share:%s:%s", noteID, granteeID)
	row := db.Get(context.Background(), docID)

	var share domain.SharedAccess
	if err := row.ScanDoc(&share); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check shared access: %w", err)
	}

	return true, nil
}

func (r *shareRepository) ListNoteIDs(granteeID string) ([]string, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"grantee_id": granteeID,
			"note_id":    map[string]interface{}{"$exists": true},
		},
	}

	rows := db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list shared notes: %w", err)
	}
	defer rows.Close()

	return scanShareNoteIDs(rows)
}
