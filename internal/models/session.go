package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionLifetime is how long a session token stays valid after login.
const SessionLifetime = 7 * 24 * time.Hour

// Session is an active login. The opaque token is sent by clients
// as a bearer token on every authenticated request.
type Session struct {
	DefaultModel
	UserID    uuid.UUID `json:"userId"`
	User      User      `json:"-"`
	Token     string    `json:"-" gorm:"uniqueIndex"`
	ExpiresAt time.Time `json:"expiresAt" example:"2022-04-09T19:28:44.491514Z"`
}

// BeforeCreate generates the resource ID and the session token.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	s.Token = uuid.NewString()
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().In(time.UTC).Add(SessionLifetime)
	}

	return nil
}

// SessionByToken returns the active session for the token.
//
// Unknown and expired tokens both surface as ErrNoActiveSession.
func SessionByToken(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNoActiveSession
	}

	var session Session
	err := DB.Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Session{}, ErrNoActiveSession
		}
		return Session{}, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		return Session{}, ErrNoActiveSession
	}

	return session, nil
}
