package service

import (
	"context"
	"time"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/Rosanadeaibes/my-notes/internal/note/domain"
	"github.com/Rosanadeaibes/my-notes/internal/note/dto"
	"github.com/google/uuid"
)

// NoteService scopes note reads to the authenticated owner. Lookups by note
// id (Get, Update, Delete) are deliberately left unscoped to match the
// current API contract; see DESIGN.md.
type NoteService struct {
	repo domain.NoteRepository
}

func NewNoteService(repo domain.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(ctx context.Context, ownerID string, input dto.CreateNoteInput) (*domain.Note, error) {
	var messages []string
	if input.Title == nil {
		messages = append(messages, "Title must be a string")
	}
	if input.Content == nil {
		messages = append(messages, "Content must be a string")
	}
	if len(messages) > 0 {
		return nil, apperror.Validation(messages...)
	}

	now := time.Now()

	note := &domain.Note{
		ID:        uuid.New().String(),
		Title:     *input.Title,
		Content:   *input.Content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// List returns the owner's notes, newest first. An empty result is an error,
// not an empty list.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, apperror.ErrNoNotesFound
	}

	return notes, nil
}

// Search with an empty query is exactly List.
func (s *NoteService) Search(ctx context.Context, ownerID, query string) ([]domain.Note, error) {
	if query == "" {
		return s.List(ctx, ownerID)
	}

	notes, err := s.repo.SearchByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, apperror.ErrNoNotesFound
	}

	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, id string) (*domain.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.ErrNoteNotFound
	}

	return note, nil
}

// Update overlays the provided fields onto the stored note and writes it
// back. Absent fields keep their stored values.
func (s *NoteService) Update(ctx context.Context, id string, input dto.UpdateNoteInput) (*domain.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.ErrNoteNotFound
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrNoteNotFound
	}

	return nil
}
