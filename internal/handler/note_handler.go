package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"notely/internal/pkg/response"
	"notely/internal/service"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func bindNoteInput(c *gin.Context) (service.NoteInput, bool) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Title is required and must be a non-empty string")
		return service.NoteInput{}, false
	}
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		response.ValidationError(c, "Title is required and must be a non-empty string")
		return service.NoteInput{}, false
	}
	if utf8.RuneCountInString(title) > service.MaxTitleChars {
		response.ValidationError(c, "Title is too long")
		return service.NoteInput{}, false
	}
	if content == "" {
		response.ValidationError(c, "Content is required and must be a non-empty string")
		return service.NoteInput{}, false
	}
	if utf8.RuneCountInString(content) > service.MaxContentChars {
		response.ValidationError(c, "Content is too long")
		return service.NoteInput{}, false
	}
	return service.NoteInput{Title: title, Content: content}, true
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.notes.Get(c.Request.Context(), getUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Create(c *gin.Context) {
	input, ok := bindNoteInput(c)
	if !ok {
		return
	}
	note, err := h.notes.Create(c.Request.Context(), getUserID(c), input)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	input, ok := bindNoteInput(c)
	if !ok {
		return
	}
	note, err := h.notes.Update(c.Request.Context(), getUserID(c), c.Param("id"), input)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.notes.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Note deleted successfully")
}
