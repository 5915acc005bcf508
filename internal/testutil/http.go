// internal/testutil/http.go
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID        string
	AccountID string
	Name      string
	Email     string
	Role      string
}

// StudentUser returns a TestUser with student role.
func StudentUser() TestUser {
	return TestUser{
		ID:        primitive.NewObjectID().Hex(),
		AccountID: uuid.NewString(),
		Name:      "Test Student",
		Email:     "student@test.com",
		Role:      "student",
	}
}

// FacultyUser returns a TestUser with faculty role.
func FacultyUser() TestUser {
	return TestUser{
		ID:        primitive.NewObjectID().Hex(),
		AccountID: uuid.NewString(),
		Name:      "Test Faculty",
		Email:     "faculty@test.com",
		Role:      "faculty",
	}
}

// AdminUser returns a TestUser with admin role.
func AdminUser() TestUser {
	return TestUser{
		ID:        primitive.NewObjectID().Hex(),
		AccountID: uuid.NewString(),
		Name:      "Test Admin",
		Email:     "admin@test.com",
		Role:      "admin",
	}
}

// ForUser converts a created fixture user into a TestUser for requests.
func ForUser(id primitive.ObjectID, accountID, name, email, role string) TestUser {
	return TestUser{
		ID:        id.Hex(),
		AccountID: accountID,
		Name:      name,
		Email:     email,
		Role:      role,
	}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		ID:        user.ID,
		AccountID: user.AccountID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
	}
	return auth.WithTestUser(r, sessionUser)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithUser(req, user)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
