package services

import (
	"studenthub/internal/domain"
	"studenthub/internal/repos"
)

// DirectoryService lists all users to authenticated observers. Any logged-in
// user may list; there is no further authorization tier.
type DirectoryService struct {
	Users *repos.UserRepo
}

func (s *DirectoryService) List() ([]domain.User, error) {
	return s.Users.All()
}
