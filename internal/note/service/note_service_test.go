package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/Rosanadeaibes/my-notes/internal/mocks"
	"github.com/Rosanadeaibes/my-notes/internal/note/domain"
	"github.com/Rosanadeaibes/my-notes/internal/note/dto"
	"github.com/Rosanadeaibes/my-notes/internal/note/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		var stored *domain.Note
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Note) error {
				stored = n
				return nil
			})

		note, err := noteService.Create(ctx, "user-123", dto.CreateNoteInput{
			Title:   strPtr("A"),
			Content: strPtr("B"),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, note.ID)
		assert.Equal(t, "A", note.Title)
		assert.Equal(t, "B", note.Content)
		assert.Equal(t, "user-123", note.OwnerID)
		assert.Equal(t, stored, note)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteService := service.NewNoteService(mocks.NewMockNoteRepository(ctrl))

		tests := []struct {
			name             string
			input            dto.CreateNoteInput
			expectedMessages []string
		}{
			{
				name:             "no title",
				input:            dto.CreateNoteInput{Content: strPtr("B")},
				expectedMessages: []string{"Title must be a string"},
			},
			{
				name:             "no content",
				input:            dto.CreateNoteInput{Title: strPtr("A")},
				expectedMessages: []string{"Content must be a string"},
			},
			{
				name:             "neither",
				input:            dto.CreateNoteInput{},
				expectedMessages: []string{"Title must be a string", "Content must be a string"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := noteService.Create(ctx, "user-123", tt.input)

				var appErr *apperror.Error
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, 400, appErr.Code)
				assert.Equal(t, tt.expectedMessages, appErr.Messages)
			})
		}
	})
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns owner notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		expected := []domain.Note{{ID: "note-2"}, {ID: "note-1"}}
		mockRepo.EXPECT().ListByOwner(gomock.Any(), "user-123").Return(expected, nil)

		notes, err := noteService.List(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, expected, notes)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().ListByOwner(gomock.Any(), "user-123").Return(nil, nil)

		_, err := noteService.List(ctx, "user-123")
		assert.ErrorIs(t, err, apperror.ErrNoNotesFound)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().ListByOwner(gomock.Any(), "user-123").Return(nil, errors.New("db down"))

		_, err := noteService.List(ctx, "user-123")
		assert.EqualError(t, err, "db down")
	})
}

func TestNoteService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query behaves exactly like List", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		expected := []domain.Note{{ID: "note-1"}}
		// Only the list path must be hit, never the search query.
		mockRepo.EXPECT().ListByOwner(gomock.Any(), "user-123").Return(expected, nil)

		notes, err := noteService.Search(ctx, "user-123", "")
		require.NoError(t, err)
		assert.Equal(t, expected, notes)
	})

	t.Run("query filters via repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		expected := []domain.Note{{ID: "note-1", Title: "Groceries"}}
		mockRepo.EXPECT().SearchByOwner(gomock.Any(), "user-123", "groc").Return(expected, nil)

		notes, err := noteService.Search(ctx, "user-123", "groc")
		require.NoError(t, err)
		assert.Equal(t, expected, notes)
	})

	t.Run("no matches is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().SearchByOwner(gomock.Any(), "user-123", "nothing").Return(nil, nil)

		_, err := noteService.Search(ctx, "user-123", "nothing")
		assert.ErrorIs(t, err, apperror.ErrNoNotesFound)
	})
}

func TestNoteService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		stored := &domain.Note{ID: "note-123", OwnerID: "user-123"}
		mockRepo.EXPECT().GetByID(gomock.Any(), "note-123").Return(stored, nil)

		note, err := noteService.Get(ctx, "note-123")
		require.NoError(t, err)
		assert.Equal(t, stored, note)
	})

	t.Run("lookup is by id only, not owner-scoped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		// A note owned by someone else is still returned: the current
		// contract does not re-check ownership on by-id paths.
		otherUsersNote := &domain.Note{ID: "note-123", OwnerID: "someone-else"}
		mockRepo.EXPECT().GetByID(gomock.Any(), "note-123").Return(otherUsersNote, nil)

		note, err := noteService.Get(ctx, "note-123")
		require.NoError(t, err)
		assert.Equal(t, "someone-else", note.OwnerID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := noteService.Get(ctx, "missing")
		assert.ErrorIs(t, err, apperror.ErrNoteNotFound)
	})
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()

	stored := func() *domain.Note {
		return &domain.Note{
			ID:        "note-123",
			Title:     "Old title",
			Content:   "Old content",
			OwnerID:   "user-123",
			CreatedAt: time.Now().Add(-time.Hour),
			UpdatedAt: time.Now().Add(-time.Hour),
		}
	}

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		existing := stored()
		mockRepo.EXPECT().GetByID(gomock.Any(), "note-123").Return(existing, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		note, err := noteService.Update(ctx, "note-123", dto.UpdateNoteInput{Title: strPtr("New title")})
		require.NoError(t, err)

		assert.Equal(t, "New title", note.Title)
		assert.Equal(t, "Old content", note.Content)
		assert.True(t, note.UpdatedAt.After(note.CreatedAt))
	})

	t.Run("both fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().GetByID(gomock.Any(), "note-123").Return(stored(), nil)

		var written *domain.Note
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Note) error {
				written = n
				return nil
			})

		note, err := noteService.Update(ctx, "note-123", dto.UpdateNoteInput{
			Title:   strPtr("New title"),
			Content: strPtr("New content"),
		})
		require.NoError(t, err)
		assert.Equal(t, written, note)
		assert.Equal(t, "New content", note.Content)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := noteService.Update(ctx, "missing", dto.UpdateNoteInput{Title: strPtr("x")})
		assert.ErrorIs(t, err, apperror.ErrNoteNotFound)
	})
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().Delete(gomock.Any(), "note-123").Return(true, nil)

		assert.NoError(t, noteService.Delete(ctx, "note-123"))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockNoteRepository(ctrl)
		noteService := service.NewNoteService(mockRepo)

		mockRepo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		err := noteService.Delete(ctx, "missing")
		assert.ErrorIs(t, err, apperror.ErrNoteNotFound)
	})
}
