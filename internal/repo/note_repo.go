package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"notely/internal/model"
	appErr "notely/internal/pkg/errors"
)

var noteColumns = []string{"id", "title", "content", "ctime", "mtime", "user_id"}

type NoteRepo struct {
	db *sqlx.DB
}

func NewNoteRepo(db *sqlx.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

func (r *NoteRepo) Create(ctx context.Context, note *model.Note) error {
	data := map[string]interface{}{
		"id":      note.ID,
		"title":   note.Title,
		"content": note.Content,
		"ctime":   note.Ctime,
		"mtime":   note.Mtime,
		"user_id": note.UserID,
	}
	sqlStr, args, err := builder.BuildInsert("notes", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return appErr.Database(err)
	}
	return nil
}

func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error) {
	where := map[string]interface{}{
		"user_id":  ownerID,
		"_orderby": "ctime desc",
	}
	sqlStr, args, err := builder.BuildSelect("notes", where, noteColumns)
	if err != nil {
		return nil, err
	}
	notes := make([]model.Note, 0)
	if err := r.db.SelectContext(ctx, &notes, sqlStr, args...); err != nil {
		return nil, appErr.Database(err)
	}
	return notes, nil
}

// GetByIDAndOwner returns ErrNotFound for notes owned by someone else, so the
// existence of another user's note is never revealed.
func (r *NoteRepo) GetByIDAndOwner(ctx context.Context, noteID, ownerID string) (*model.Note, error) {
	where := map[string]interface{}{
		"id":      noteID,
		"user_id": ownerID,
	}
	sqlStr, args, err := builder.BuildSelect("notes", where, noteColumns)
	if err != nil {
		return nil, err
	}
	var note model.Note
	if err := r.db.GetContext(ctx, &note, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, appErr.Database(err)
	}
	return &note, nil
}

func (r *NoteRepo) Update(ctx context.Context, note *model.Note) error {
	where := map[string]interface{}{
		"id":      note.ID,
		"user_id": note.UserID,
	}
	update := map[string]interface{}{
		"title":   note.Title,
		"content": note.Content,
		"mtime":   note.Mtime,
	}
	sqlStr, args, err := builder.BuildUpdate("notes", where, update)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return appErr.Database(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return appErr.Database(err)
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *NoteRepo) Delete(ctx context.Context, noteID, ownerID string) error {
	where := map[string]interface{}{
		"id":      noteID,
		"user_id": ownerID,
	}
	sqlStr, args, err := builder.BuildDelete("notes", where)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return appErr.Database(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return appErr.Database(err)
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
