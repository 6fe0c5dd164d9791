package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"studenthub/internal/auth"
	"studenthub/internal/broadcast"
	"studenthub/internal/http/handlers"
	"studenthub/internal/repos"
)

const testKey = "test-signing-key"

type testEnv struct {
	app *fiber.App
	hub *broadcast.Hub
	db  *sqlx.DB
}

// newTestEnv wires the real handler stack over an in-memory SQLite store,
// mirroring the route table in cmd/studenthub.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokens([]byte(testKey), time.Hour)
	hub := broadcast.NewHub()
	deps := handlers.NewDeps(db, tokens, hub)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error."})
		},
	})

	requireUser := handlers.RequireUser(tokens, deps.Users)
	api := app.Group("/api")
	api.Post("/auth/signup", deps.AuthHandler.Signup)
	api.Post("/auth/login", deps.AuthHandler.Login)
	profile := api.Group("/profile", requireUser)
	profile.Get("/", deps.ProfileHandler.Show)
	profile.Put("/", deps.ProfileHandler.Update)
	profile.Post("/pay", deps.ProfileHandler.Pay)
	api.Get("/students", requireUser, deps.DirectoryHandler.List)

	return &testEnv{app: app, hub: hub, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func (e *testEnv) signup(t *testing.T, name, email, password string) {
	t.Helper()
	resp := e.do(t, "POST", "/api/auth/signup", "", fiber.Map{"name": name, "email": email, "password": password})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: status %d", email, resp.StatusCode)
	}
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.do(t, "POST", "/api/auth/login", "", fiber.Map{"email": email, "password": password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &out)
	if out.Token == "" {
		t.Fatal("login returned empty token")
	}
	return out.Token
}
