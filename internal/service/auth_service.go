package service

import (
	"context"
	"time"

	"notely/internal/model"
	appErr "notely/internal/pkg/errors"
	"notely/internal/pkg/jwt"
	"notely/internal/pkg/password"
	"notely/internal/pkg/timeutil"
	"notely/internal/repo"
)

type AuthService struct {
	users     *repo.UserRepo
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users *repo.UserRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates the user and mints a session token for it. Emails are
// stored exactly as submitted; no case or whitespace normalization happens
// anywhere in the lookup path either.
func (s *AuthService) Register(ctx context.Context, email, plainPassword string) (*model.User, string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", appErr.ErrConflict
	} else if !appErr.IsNotFound(err) {
		return nil, "", err
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		ID:           newID(),
		Email:        email,
		PasswordHash: hash,
		Ctime:        timeutil.NowUnixMilli(),
	}
	// The unique index on email backstops the lookup above under races.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := jwt.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login returns ErrUnauthorized for both unknown emails and password
// mismatches so the two cases are indistinguishable to a caller.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if appErr.IsNotFound(err) {
			return nil, "", appErr.ErrUnauthorized
		}
		return nil, "", err
	}
	if !password.Verify(plainPassword, user.PasswordHash) {
		return nil, "", appErr.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}
