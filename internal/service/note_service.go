package service

import (
	"context"
	"strings"

	"notely/internal/model"
	appErr "notely/internal/pkg/errors"
	"notely/internal/pkg/timeutil"
	"notely/internal/repo"
)

const (
	MaxTitleChars   = 200
	MaxContentChars = 50000
)

type NoteService struct {
	notes *repo.NoteRepo
	now   func() int64
}

func NewNoteService(notes *repo.NoteRepo) *NoteService {
	return &NoteService{notes: notes, now: timeutil.NowUnixMilli}
}

type NoteInput struct {
	Title   string
	Content string
}

func (in *NoteInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" || in.Content == "" {
		return appErr.ErrInvalid
	}
	return nil
}

func (s *NoteService) Create(ctx context.Context, ownerID string, input NoteInput) (*model.Note, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}
	now := s.now()
	note := &model.Note{
		ID:      newID(),
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
		Ctime:   now,
		Mtime:   now,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, ownerID string) ([]model.Note, error) {
	return s.notes.ListByOwner(ctx, ownerID)
}

func (s *NoteService) Get(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	return s.notes.GetByIDAndOwner(ctx, noteID, ownerID)
}

func (s *NoteService) Update(ctx context.Context, ownerID, noteID string, input NoteInput) (*model.Note, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}
	note := &model.Note{
		ID:      noteID,
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
		Mtime:   s.now(),
	}
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return s.notes.GetByIDAndOwner(ctx, noteID, ownerID)
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	return s.notes.Delete(ctx, noteID, ownerID)
}
