package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	"ecoscrap.backend/internal/usecases"
	"ecoscrap.backend/pkg/crypto"
	"ecoscrap.backend/pkg/jwt"
)

func newAuthTestJWT() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
}

func seedActiveUser(t *testing.T, repo *userRepoStub, email, password string, role entities.UserRole) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         "Asha",
		Role:         role,
		Status:       entities.UserStatusActive,
	}
	repo.byID[user.ID] = user
	repo.byEmail[user.Email] = user.ID
	return user
}

func TestAuthHandler_RegisterLoginFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newUserRepoStub()
	h := NewAuthHandler(usecases.NewAuthUsecase(repo, newAuthTestJWT(), nil))

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)

	registerBody := []byte(`{"name":"Asha Kumar","email":"asha@example.com","phone":"9876543210","address":"12 MG Road","password":"supersecret","role":"customer"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var registered entities.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	if registered.AccessToken == "" || registered.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", registered)
	}
	if registered.User == nil || registered.User.Role != entities.UserRoleCustomer {
		t.Fatalf("unexpected user in register response: %+v", registered.User)
	}

	// same email again conflicts
	req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d body=%s", w.Code, w.Body.String())
	}

	loginBody := []byte(`{"email":"asha@example.com","password":"supersecret"}`)
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var loggedIn entities.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}

	refreshBody, _ := json.Marshal(gin.H{"refreshToken": loggedIn.RefreshToken})
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(refreshBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for refresh, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(usecases.NewAuthUsecase(newUserRepoStub(), newAuthTestJWT(), nil))

	r := gin.New()
	r.POST("/auth/register", h.Register)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Asha","phone":"9876543210","address":"a","password":"supersecret","role":"customer"}`},
		{"short password", `{"name":"Asha","email":"a@b.com","phone":"9876543210","address":"a","password":"short","role":"customer"}`},
		{"bad role", `{"name":"Asha","email":"a@b.com","phone":"9876543210","address":"a","password":"supersecret","role":"root"}`},
		{"dealer without business name", `{"name":"Asha","email":"a@b.com","phone":"9876543210","address":"a","password":"supersecret","role":"dealer"}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte(tc.body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestAuthHandler_LoginErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newUserRepoStub()
	seedActiveUser(t, repo, "asha@example.com", "supersecret", entities.UserRoleCustomer)
	blocked := seedActiveUser(t, repo, "blocked@example.com", "supersecret", entities.UserRoleCustomer)
	blocked.Status = entities.UserStatusBlocked

	h := NewAuthHandler(usecases.NewAuthUsecase(repo, newAuthTestJWT(), nil))
	r := gin.New()
	r.POST("/auth/login", h.Login)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"wrong password", `{"email":"asha@example.com","password":"wrongwrong"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"ghost@example.com","password":"supersecret"}`, http.StatusUnauthorized},
		{"blocked account", `{"email":"blocked@example.com","password":"supersecret"}`, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(tc.body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d body=%s", tc.name, tc.want, w.Code, w.Body.String())
		}
	}
}

func TestAuthHandler_ProfileFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newUserRepoStub()
	user := seedActiveUser(t, repo, "asha@example.com", "supersecret", entities.UserRoleCustomer)

	h := NewAuthHandler(usecases.NewAuthUsecase(repo, newAuthTestJWT(), nil))
	r := gin.New()
	r.GET("/auth/profile", withUser(user), h.GetProfile)
	r.PUT("/auth/profile", withUser(user), h.UpdateProfile)
	r.POST("/auth/change-password", withUser(user), h.ChangePassword)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	updateBody := []byte(`{"name":"Asha K","phone":"9999999999"}`)
	req = httptest.NewRequest(http.MethodPut, "/auth/profile", bytes.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var updated entities.User
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if updated.Name != "Asha K" || updated.Phone != "9999999999" {
		t.Fatalf("profile not updated: %+v", updated)
	}

	changeBody := []byte(`{"currentPassword":"supersecret","newPassword":"evenmoresecret"}`)
	req = httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(changeBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// old password no longer accepted
	req = httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(changeBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for stale current password, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newUserRepoStub()
	user := seedActiveUser(t, repo, "asha@example.com", "supersecret", entities.UserRoleCustomer)

	h := NewAuthHandler(usecases.NewAuthUsecase(repo, newAuthTestJWT(), nil))
	r := gin.New()
	r.POST("/auth/logout", withUser(user), h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}
