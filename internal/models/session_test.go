package models_test

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSessionCreate() {
	user := suite.createTestUser("jane@example.com")

	session := models.Session{UserID: user.ID}
	require.Nil(suite.T(), models.DB.Create(&session).Error)

	assert.NotEmpty(suite.T(), session.Token)
	assert.WithinDuration(suite.T(), time.Now().Add(models.SessionLifetime), session.ExpiresAt, time.Minute)
}

func (suite *TestSuiteStandard) TestSessionByToken() {
	user := suite.createTestUser("jane@example.com")

	session := models.Session{UserID: user.ID}
	require.Nil(suite.T(), models.DB.Create(&session).Error)

	found, err := models.SessionByToken(session.Token)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), session.ID, found.ID)

	// The user is preloaded for the middleware
	assert.Equal(suite.T(), "jane@example.com", found.User.Email)
}

func (suite *TestSuiteStandard) TestSessionByTokenInvalid() {
	user := suite.createTestUser("jane@example.com")

	expired := models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)}
	require.Nil(suite.T(), models.DB.Create(&expired).Error)

	tests := []struct {
		name  string
		token string
	}{
		{"Empty token", ""},
		{"Unknown token", "4e0b4872-06ed-4312-90b9-f47e19a9incorrect"},
		{"Expired token", expired.Token},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.SessionByToken(tt.token)
			assert.ErrorIs(t, err, models.ErrNoActiveSession)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionDelete() {
	user := suite.createTestUser("jane@example.com")

	session := models.Session{UserID: user.ID}
	require.Nil(suite.T(), models.DB.Create(&session).Error)

	require.Nil(suite.T(), models.DB.Delete(&session).Error)

	_, err := models.SessionByToken(session.Token)
	assert.ErrorIs(suite.T(), err, models.ErrNoActiveSession)
}
