package dto

import (
	"time"

	"github.com/Rosanadeaibes/my-notes/internal/note/domain"
)

type CreateNoteInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type UpdateNoteInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NoteOutput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDomain(n *domain.Note) NoteOutput {
	return NoteOutput{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromDomainList(notes []domain.Note) []NoteOutput {
	out := make([]NoteOutput, 0, len(notes))
	for i := range notes {
		out = append(out, FromDomain(&notes[i]))
	}
	return out
}
