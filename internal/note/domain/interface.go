package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_note_repository.go -package=mocks github.com/Rosanadeaibes/my-notes/internal/note/domain NoteRepository

type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	ListByOwner(ctx context.Context, ownerID string) ([]Note, error)
	SearchByOwner(ctx context.Context, ownerID, query string) ([]Note, error)
	GetByID(ctx context.Context, id string) (*Note, error)
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, id string) (bool, error)
}
