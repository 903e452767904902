package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
	"github.com/iliesb/campus-admin-client/internal/session"
	"github.com/iliesb/campus-admin-client/internal/storage"
)

const stubSecret = "api-test-secret"

// issueToken mints a token the way the backend does on login, signup and
// profile update.
func issueToken(email, roles, fullName string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      email,
		"roles":    roles,
		"fullName": fullName,
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(stubSecret))
}

// newAuthStub serves the credential-issuing endpoints plus a protected
// probe, validating bearer tokens like the real backend.
func newAuthStub(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()

	fullName := "Marie Dupont"

	e.POST("/auth/login", func(c echo.Context) error {
		var creds model.Credentials
		if err := c.Bind(&creds); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		if creds.Email != "marie@univ.fr" || creds.Password != "s3cret" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "identifiants invalides"})
		}
		tok, err := issueToken(creds.Email, "ROLE_GESTIONNAIRE", fullName)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.TokenResponse{Token: tok})
	})

	e.POST("/auth/signup", func(c echo.Context) error {
		var req model.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		tok, err := issueToken(req.Email, "ROLE_ETUDIANT", req.FullName)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, model.TokenResponse{Token: tok})
	})

	requireBearer := func(c echo.Context) (string, bool) {
		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return "", false
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(stubSecret), nil
		})
		if err != nil || !tok.Valid {
			return "", false
		}
		claims := tok.Claims.(jwt.MapClaims)
		email, _ := claims["sub"].(string)
		return email, true
	}

	e.PATCH("/users/me", func(c echo.Context) error {
		email, ok := requireBearer(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "token invalide"})
		}
		var req model.ProfileUpdate
		if err := c.Bind(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		fullName = req.FullName
		tok, err := issueToken(email, "ROLE_GESTIONNAIRE", fullName)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.TokenResponse{Token: tok})
	})

	e.GET("/users/me", func(c echo.Context) error {
		email, ok := requireBearer(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "token invalide"})
		}
		return c.JSON(http.StatusOK, model.UserProfile{ID: 7, Email: email, FullName: fullName, Role: "GESTIONNAIRE"})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuth_LoginCommitUpdateProfileRecommit(t *testing.T) {
	srv := newAuthStub(t)

	store, err := storage.Open(filepath.Join(t.TempDir(), "creds.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	sessions := session.NewManager(store)

	gw, err := gateway.New(srv.URL, 5*time.Second, sessions.Token, nil)
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	auth := NewAuth(gw)
	ctx := context.Background()

	token, err := auth.Login(ctx, "marie@univ.fr", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	s, err := sessions.Commit(token)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if s == nil || s.Role != session.RoleGestionnaire || s.DisplayName != "Marie Dupont" {
		t.Fatalf("session after login: %+v", s)
	}

	// PATCH /users/me re-issues the credential; committing the new one
	// must refresh the derived display name.
	token, err = auth.UpdateProfile(ctx, "Marie Dupont-Leroy")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	s, err = sessions.Commit(token)
	if err != nil {
		t.Fatalf("Commit (re-issued): %v", err)
	}
	if s.DisplayName != "Marie Dupont-Leroy" {
		t.Errorf("DisplayName after profile update: got %q", s.DisplayName)
	}

	profile, err := auth.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if profile.FullName != "Marie Dupont-Leroy" {
		t.Errorf("profile FullName: got %q", profile.FullName)
	}
}

func TestAuth_BadLoginDoesNotPurgeExistingCredential(t *testing.T) {
	// The 401 policy is global by design; this test pins the blast
	// radius callers should expect: even a failed login attempt runs it.
	srv := newAuthStub(t)

	store, err := storage.Open(filepath.Join(t.TempDir(), "creds.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	sessions := session.NewManager(store)

	var purges int
	gw, err := gateway.New(srv.URL, 5*time.Second, sessions.Token, func() {
		purges++
		if err := sessions.Clear(); err != nil {
			t.Errorf("Clear: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	auth := NewAuth(gw)

	_, err = auth.Login(context.Background(), "marie@univ.fr", "wrong")
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected a 401 APIError, got %v", err)
	}
	if purges != 1 {
		t.Errorf("expected the global policy to run once, ran %d times", purges)
	}
	if _, err := store.Load(); !errors.Is(err, storage.ErrNoCredential) {
		t.Errorf("expected no credential after the purge, got %v", err)
	}
}

func TestFacilities_CRUDRoundTrip(t *testing.T) {
	// In-memory facility registry with the real backend's paths.
	e := echo.New()
	salles := map[string]model.SalleRequest{}

	e.POST("/salles", func(c echo.Context) error {
		var req model.SalleRequest
		if err := c.Bind(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		salles[req.NumS] = req
		return c.NoContent(http.StatusCreated)
	})
	e.PATCH("/salles/:num", func(c echo.Context) error {
		if _, ok := salles[c.Param("num")]; !ok {
			return c.NoContent(http.StatusNotFound)
		}
		var req model.SalleRequest
		if err := c.Bind(&req); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		salles[c.Param("num")] = req
		return c.NoContent(http.StatusOK)
	})
	e.DELETE("/salles/:num", func(c echo.Context) error {
		if _, ok := salles[c.Param("num")]; !ok {
			return c.NoContent(http.StatusNotFound)
		}
		delete(salles, c.Param("num"))
		return c.NoContent(http.StatusNoContent)
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	gw, err := gateway.New(srv.URL, 5*time.Second, nil, nil)
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	facilities := NewFacilities(gw)
	ctx := context.Background()

	req := model.SalleRequest{NumS: "S101", Capacite: 30, TypeS: "TD", Etage: "1", BatimentCodeB: "B42"}
	if err := facilities.CreateSalle(ctx, req); err != nil {
		t.Fatalf("CreateSalle: %v", err)
	}
	req.Capacite = 45
	if err := facilities.UpdateSalle(ctx, "S101", req); err != nil {
		t.Fatalf("UpdateSalle: %v", err)
	}
	if salles["S101"].Capacite != 45 {
		t.Errorf("capacity after update: got %d", salles["S101"].Capacite)
	}
	if err := facilities.DeleteSalle(ctx, "S101"); err != nil {
		t.Fatalf("DeleteSalle: %v", err)
	}
	if len(salles) != 0 {
		t.Errorf("registry after delete: %v", salles)
	}
}

func TestUsers_SetRolePayload(t *testing.T) {
	e := echo.New()
	var gotID string
	var gotRole string
	e.PATCH("/admin/users/:id/role", func(c echo.Context) error {
		gotID = c.Param("id")
		var body map[string]string
		if err := c.Bind(&body); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		gotRole = body["role"]
		return c.JSON(http.StatusOK, echo.Map{"message": "Role updated successfully"})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	gw, err := gateway.New(srv.URL, 5*time.Second, nil, nil)
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}

	if err := NewUsers(gw).SetRole(context.Background(), 12, "ENSEIGNANT"); err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if gotID != strconv.Itoa(12) {
		t.Errorf("id: got %q", gotID)
	}
	if gotRole != "ENSEIGNANT" {
		t.Errorf("role: got %q", gotRole)
	}
}
