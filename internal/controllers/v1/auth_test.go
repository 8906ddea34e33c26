package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	tests := []struct {
		name   string
		email  string
		pass   string
		status int
	}{
		{"Success", "jane@example.com", "correct-horse-9", http.StatusCreated},
		{"Email without @", "janeexample.com", "correct-horse-9", http.StatusBadRequest},
		{"Empty email", "", "correct-horse-9", http.StatusBadRequest},
		{"Password too short", "jane@example.com", "short", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{Email: tt.email, Password: tt.pass})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterNormalizesEmail() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{Email: " Jane@Example.com ", Password: "correct-horse-9"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "jane@example.com", response.Data.Email)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	editable := v1.RegisterEditable{Email: "jane@example.com", Password: "correct-horse-9"}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrEmailTaken.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestLogin() {
	editable := v1.RegisterEditable{Email: "jane@example.com", Password: "correct-horse-9"}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name   string
		email  string
		pass   string
		status int
	}{
		{"Success", "jane@example.com", "correct-horse-9", http.StatusCreated},
		{"Email is case insensitive", "JANE@example.com", "correct-horse-9", http.StatusCreated},
		{"Wrong password", "jane@example.com", "incorrect-horse", http.StatusUnauthorized},
		{"Unknown email", "nobody@example.com", "correct-horse-9", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{Email: tt.email, Password: tt.pass})
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusCreated {
				var response v1.LoginResponse
				test.DecodeResponse(t, &r, &response)
				assert.NotEmpty(t, response.Data.Token)
				assert.Equal(t, "jane@example.com", response.Data.User.Email)
			}
		})
	}
}

// TestLoginErrorsDoNotLeakRegistrations verifies that a wrong password
// and an unknown email produce the same error message.
func (suite *TestSuiteStandard) TestLoginErrorsDoNotLeakRegistrations() {
	editable := v1.RegisterEditable{Email: "jane@example.com", Password: "correct-horse-9"}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{Email: "jane@example.com", Password: "incorrect-horse"})
	var wrongPassword v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &wrongPassword)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{Email: "nobody@example.com", Password: "correct-horse-9"})
	var unknownEmail v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &unknownEmail)

	assert.Equal(suite.T(), *wrongPassword.Error, *unknownEmail.Error)
}

func (suite *TestSuiteStandard) TestGetMe() {
	login := createTestSession(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), login.User.Email, response.Data.Email)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		name   string
		header map[string]string
	}{
		{"No header", nil},
		{"Empty token", test.BearerHeader("")},
		{"Unknown token", test.BearerHeader("ec6dbdfa-7e16-4b1a-994b-d8e347c47e28")},
		{"Not a bearer header", map[string]string{"Authorization": "Basic jane"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var r = test.Request(t, http.MethodGet, "http://example.com/v1/auth/me", nil, tt.header)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestLogout() {
	login := createTestSession(suite.T())

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/auth/logout", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The session is gone, the token does not work anymore
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
