package model

type User struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Ctime        int64  `json:"createdAt" db:"ctime"`
}
