package service

import (
	"errors"
	"fmt"
	"time"

	"noteshare-server/internal/domain"
	"noteshare-server/internal/repository"

	"github.com/google/uuid"
)

type NoteService struct {
	noteRepo  repository.NoteRepository
	shareRepo repository.ShareRepository
	userRepo  repository.UserRepository
}

func NewNoteService(
	noteRepo repository.NoteRepository,
	shareRepo repository.ShareRepository,
	userRepo repository.UserRepository,
) *NoteService {
	return &NoteService{
		noteRepo:  noteRepo,
		shareRepo: shareRepo,
		userRepo:  userRepo,
	}
}

// canAccess is the owner-or-grantee rule gating every note read and write.
// Callers establish the note exists before applying it.
func (s *NoteService) canAccess(note *domain.Note, userID string) (bool, error) {
	if note.OwnerID == userID {
		return true, nil
	}
	return s.shareRepo.Exists(note.ID, userID)
}

func (s *NoteService) Create(userID string, req *domain.CreateNoteRequest) (*domain.CreateNoteResponse, error) {
	now := time.Now()

	note := &domain.Note{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
		Versions:  []domain.VersionRecord{},
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}

	return &domain.CreateNoteResponse{
		Message:   "Note created successfully!",
		ID:        note.ID,
		Title:     note.Title,
		CreatedAt: domain.FormatTimestamp(note.CreatedAt),
	}, nil
}

// List returns the union of owned and shared notes as {id, title}
// projections.
func (s *NoteService) List(userID string) ([]*domain.NoteSummary, error) {
	owned, err := s.noteRepo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	var summaries []*domain.NoteSummary
	seen := make(map[string]bool)

	for _, n := range owned {
		summaries = append(summaries, &domain.NoteSummary{ID: n.ID, Title: n.Title})
		seen[n.ID] = true
	}

	sharedIDs, err := s.shareRepo.ListNoteIDs(userID)
	if err != nil {
		return nil, err
	}

	for _, id := range sharedIDs {
		if seen[id] {
			continue
		}
		note, err := s.noteRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, domain.ErrNoteNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, &domain.NoteSummary{ID: note.ID, Title: note.Title})
		seen[id] = true
	}

	return summaries, nil
}

func (s *NoteService) GetByID(userID, noteID string) (*domain.NoteDetailResponse, error) {
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(note, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorizedAccess
	}

	return &domain.NoteDetailResponse{
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: domain.FormatTimestamp(note.CreatedAt),
		UpdatedAt: domain.FormatTimestamp(note.UpdatedAt),
	}, nil
}

// Update appends the submitted fragment to the note's content, separated
// by a line break. This is a concatenating update, not a replace; repeated
// updates grow the note. A version record holding the raw fragment is
// appended to the note's version log in the same write.
func (s *NoteService) Update(userID, noteID string, req *domain.UpdateNoteRequest) (*domain.UpdateNoteResponse, error) {
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(note, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorizedAccess
	}

	author, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve update author: %w", err)
	}

	note.Versions = append(note.Versions, domain.VersionRecord{
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Timestamp:  time.Now(),
		Changes:    req.Content,
	})
	note.Content = note.Content + "\n" + req.Content
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(note); err != nil {
		return nil, err
	}

	return &domain.UpdateNoteResponse{
		Title:          note.Title,
		UpdatedContent: note.Content,
		CreatedAt:      domain.FormatTimestamp(note.CreatedAt),
		UpdatedAt:      domain.FormatTimestamp(note.UpdatedAt),
	}, nil
}

// Share grants read/update rights to each resolved username. Sharing is
// owner-only; a non-owner gets not-found rather than forbidden so the
// note's existence is not revealed. Unknown usernames are skipped.
func (s *NoteService) Share(userID string, req *domain.ShareNoteRequest) error {
	note, err := s.noteRepo.FindByID(req.NoteID)
	if err != nil {
		return err
	}

	if note.OwnerID != userID {
		return domain.ErrNoteNotFound
	}

	for _, username := range req.Usernames {
		grantee, err := s.userRepo.FindByUsername(username)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return err
		}

		share := &domain.SharedAccess{
			NoteID:    note.ID,
			GranteeID: grantee.ID,
			CreatedAt: time.Now(),
		}
		if err := s.shareRepo.Create(share); err != nil {
			return err
		}
	}

	return nil
}

// VersionHistory returns all version records in insertion order.
func (s *NoteService) VersionHistory(userID, noteID string) ([]*domain.VersionResponse, error) {
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(note, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorizedAccess
	}

	versions := make([]*domain.VersionResponse, 0, len(note.Versions))
	for _, v := range note.Versions {
		versions = append(versions, &domain.VersionResponse{
			Timestamp: v.Timestamp,
			User:      v.AuthorName,
			Changes:   v.Changes,
		})
	}

	return versions, nil
}
