package handlers

import (
	"github.com/jmoiron/sqlx"

	"studenthub/internal/auth"
	"studenthub/internal/broadcast"
	"studenthub/internal/repos"
	"studenthub/internal/services"
)

type Deps struct {
	Users *repos.UserRepo

	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	DirectoryHandler *DirectoryHandler
	EventsHandler    *EventsHandler
}

func NewDeps(db *sqlx.DB, tokens *auth.Tokens, hub *broadcast.Hub) *Deps {
	userRepo := repos.NewUserRepo(db)

	authSvc := &services.AuthService{Users: userRepo, Tokens: tokens}
	profileSvc := &services.ProfileService{Users: userRepo, Hub: hub}
	dirSvc := &services.DirectoryService{Users: userRepo}

	return &Deps{
		Users:            userRepo,
		AuthHandler:      &AuthHandler{Auth: authSvc},
		ProfileHandler:   &ProfileHandler{Profile: profileSvc},
		DirectoryHandler: &DirectoryHandler{Directory: dirSvc},
		EventsHandler:    &EventsHandler{Hub: hub},
	}
}
