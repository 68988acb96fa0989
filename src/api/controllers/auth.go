package controllers

import (
	"context"
	"errors"
	"time"

	"finance/src/models"
	"finance/src/schemas"
	"finance/src/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

// Register creates a new user with a bcrypt-hashed password. The raw
// password is never stored.
func (c *Controller) Register(ctx context.Context, req *schemas.RegisterRequest) error {
	if req.Username == "" {
		return utils.BadRequest("must provide username")
	}
	if req.Password == "" {
		return utils.BadRequest("must provide password")
	}
	if !utils.ValidatePassword(req.Password) {
		return utils.BadRequest("password does not meet requirements")
	}
	if req.Confirmation == "" {
		return utils.BadRequest("must provide confirmation")
	}
	if req.Password != req.Confirmation {
		return utils.BadRequest("passwords do not match")
	}

	_, err := c.Users.GetByUsername(ctx, req.Username)
	if err == nil {
		return utils.BadRequest("username unavailable")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{Username: req.Username, Hash: string(hash)}
	if err := c.Users.Create(ctx, user); err != nil {
		// Concurrent registration of the same username loses here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return utils.BadRequest("username unavailable")
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a session token. Unknown user
// and wrong password are deliberately indistinguishable.
func (c *Controller) Login(ctx context.Context, req *schemas.LoginRequest) (*schemas.LoginResponse, time.Time, error) {
	if req.Username == "" {
		return nil, time.Time{}, utils.Forbidden("must provide username")
	}
	if req.Password == "" {
		return nil, time.Time{}, utils.Forbidden("must provide password")
	}

	user, err := c.Users.GetByUsername(ctx, req.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, time.Time{}, utils.Forbidden("invalid username and/or password")
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(req.Password)) != nil {
		return nil, time.Time{}, utils.Forbidden("invalid username and/or password")
	}

	expiresAt := time.Now().Add(c.SessionTTL)
	_, tokenString, err := c.TokenAuth.Encode(map[string]interface{}{
		"user_id": user.ID,
		"jti":     uuid.NewString(),
		"iat":     time.Now().Unix(),
		"exp":     expiresAt.Unix(),
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	return &schemas.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    tokenString,
	}, expiresAt, nil
}
