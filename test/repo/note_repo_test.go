package repo_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"notely/internal/model"
	appErr "notely/internal/pkg/errors"
	"notely/internal/repo"
	"notely/test/testutil"
)

func openTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	return testutil.OpenTestDB(t)
}

func seedUser(t *testing.T, db *sqlx.DB, id string) {
	t.Helper()
	users := repo.NewUserRepo(db)
	require.NoError(t, users.Create(context.Background(), &model.User{
		ID:           id,
		Email:        id + "@example.com",
		PasswordHash: "x",
		Ctime:        1,
	}))
}

func TestNoteRepoCRUDAndIsolation(t *testing.T) {
	db, cleanup := openTestDB(t)
	defer cleanup()
	seedUser(t, db, "user-1")
	seedUser(t, db, "user-2")

	notes := repo.NewNoteRepo(db)
	note := &model.Note{
		ID:      "note-1",
		UserID:  "user-1",
		Title:   "title",
		Content: "content",
		Ctime:   1000,
		Mtime:   1000,
	}
	require.NoError(t, notes.Create(context.Background(), note))

	fetched, err := notes.GetByIDAndOwner(context.Background(), "note-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, "title", fetched.Title)

	// A foreign note is indistinguishable from a missing one.
	_, err = notes.GetByIDAndOwner(context.Background(), "note-1", "user-2")
	require.ErrorIs(t, err, appErr.ErrNotFound)

	note.Title = "updated"
	note.Mtime = 2000
	require.NoError(t, notes.Update(context.Background(), note))

	foreign := *note
	foreign.UserID = "user-2"
	require.ErrorIs(t, notes.Update(context.Background(), &foreign), appErr.ErrNotFound)
	require.ErrorIs(t, notes.Delete(context.Background(), "note-1", "user-2"), appErr.ErrNotFound)

	require.NoError(t, notes.Delete(context.Background(), "note-1", "user-1"))
	_, err = notes.GetByIDAndOwner(context.Background(), "note-1", "user-1")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestNoteRepoListByOwnerOrdering(t *testing.T) {
	db, cleanup := openTestDB(t)
	defer cleanup()
	seedUser(t, db, "user-1")
	seedUser(t, db, "user-2")

	notes := repo.NewNoteRepo(db)
	for i, note := range []*model.Note{
		{ID: "note-a", UserID: "user-1", Title: "a", Content: "a", Ctime: 1000, Mtime: 1000},
		{ID: "note-b", UserID: "user-1", Title: "b", Content: "b", Ctime: 3000, Mtime: 3000},
		{ID: "note-c", UserID: "user-1", Title: "c", Content: "c", Ctime: 2000, Mtime: 2000},
		{ID: "note-d", UserID: "user-2", Title: "d", Content: "d", Ctime: 4000, Mtime: 4000},
	} {
		require.NoError(t, notes.Create(context.Background(), note), "note %d", i)
	}

	list, err := notes.ListByOwner(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "note-b", list[0].ID)
	require.Equal(t, "note-c", list[1].ID)
	require.Equal(t, "note-a", list[2].ID)
}

func TestNoteRepoListByOwnerEmpty(t *testing.T) {
	db, cleanup := openTestDB(t)
	defer cleanup()
	seedUser(t, db, "user-1")

	notes := repo.NewNoteRepo(db)
	list, err := notes.ListByOwner(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestNoteRepoCascadeDeleteWithOwner(t *testing.T) {
	db, cleanup := openTestDB(t)
	defer cleanup()
	seedUser(t, db, "user-1")

	notes := repo.NewNoteRepo(db)
	require.NoError(t, notes.Create(context.Background(), &model.Note{
		ID: "note-1", UserID: "user-1", Title: "t", Content: "c", Ctime: 1000, Mtime: 1000,
	}))

	_, err := db.Exec("DELETE FROM users WHERE id = ?", "user-1")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM notes WHERE user_id = ?", "user-1"))
	require.Zero(t, count)
}
