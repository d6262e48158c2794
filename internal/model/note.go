package model

type Note struct {
	ID      string `json:"id" db:"id"`
	UserID  string `json:"userId" db:"user_id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Ctime   int64  `json:"createdAt" db:"ctime"`
	Mtime   int64  `json:"updatedAt" db:"mtime"`
}
