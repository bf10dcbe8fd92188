package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the note endpoints behind the given access guard.
func RegisterRoutes(app *fiber.App, h *NoteHandler, guard fiber.Handler) {
	note := app.Group("/note", guard)
	note.Post("/create-note", h.Create)
	note.Get("/get-notes", h.GetNotes)
	note.Get("/get-note/:id", h.GetNote)
	note.Get("/search-notes", h.SearchNotes)
	note.Put("/update-note/:id", h.UpdateNote)
	note.Delete("/delete-note/:id", h.DeleteNote)
}
