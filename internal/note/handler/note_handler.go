package handler

import (
	"fmt"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/Rosanadeaibes/my-notes/internal/middleware"
	"github.com/Rosanadeaibes/my-notes/internal/note/dto"
	"github.com/Rosanadeaibes/my-notes/internal/note/service"
	"github.com/Rosanadeaibes/my-notes/internal/response"
	"github.com/gofiber/fiber/v2"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateNoteInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrInvalidInput
	}

	note, err := h.noteService.Create(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated, "Note created", dto.FromDomain(note))
}

func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	notes, err := h.noteService.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Notes retrieved", dto.FromDomainList(notes))
}

func (h *NoteHandler) SearchNotes(c *fiber.Ctx) error {
	notes, err := h.noteService.Search(c.Context(), middleware.UserID(c), c.Query("q"))
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Notes retrieved", dto.FromDomainList(notes))
}

func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.noteService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Note retrieved", dto.FromDomain(note))
}

func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	var input dto.UpdateNoteInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrInvalidInput
	}

	note, err := h.noteService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Note updated", dto.FromDomain(note))
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.noteService.Delete(c.Context(), id); err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Note with id %s deleted", id), nil)
}
