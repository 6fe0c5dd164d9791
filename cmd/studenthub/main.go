package main

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"studenthub/internal/auth"
	"studenthub/internal/broadcast"
	"studenthub/internal/config"
	"studenthub/internal/http/handlers"
	applog "studenthub/internal/log"
	"studenthub/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	tokens := auth.NewTokens([]byte(cfg.JWTSecret), cfg.TokenTTL)
	hub := broadcast.NewHub()
	deps := handlers.NewDeps(db, tokens, hub)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
			}
			// Avoid leaking internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error."})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// The API is consumed by an external SPA; bearer tokens, not cookies, carry
	// identity, so a wide-open CORS policy is safe here.
	app.Use(cors.New())

	requireUser := handlers.RequireUser(tokens, deps.Users)

	// ---------- Routes ----------
	api := app.Group("/api")

	authGrp := api.Group("/auth")
	authGrp.Post("/signup", deps.AuthHandler.Signup)
	authGrp.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)

	profile := api.Group("/profile", requireUser)
	profile.Get("/", deps.ProfileHandler.Show)
	profile.Put("/", deps.ProfileHandler.Update)
	profile.Post("/pay", deps.ProfileHandler.Pay)

	api.Get("/students", requireUser, deps.DirectoryHandler.List)

	api.Get("/events", requireUser, handlers.Upgrade, websocket.New(deps.EventsHandler.Serve))

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
