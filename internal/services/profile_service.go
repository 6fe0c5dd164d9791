package services

import (
	"studenthub/internal/broadcast"
	"studenthub/internal/domain"
	"studenthub/internal/repos"
)

type ProfileService struct {
	Users *repos.UserRepo
	Hub   *broadcast.Hub
}

// Update writes the new name/email pair and returns the fresh record.
func (s *ProfileService) Update(userID, name, email string) (*domain.User, error) {
	if err := s.Users.UpdateProfile(userID, name, email); err != nil {
		return nil, err
	}
	return s.Users.ByID(userID)
}

// PayFees marks the one-time flag and then notifies connected observers.
// Persist comes first; the publish is fire-and-forget and cannot fail the
// request, so a missed delivery only delays an observer's refresh.
func (s *ProfileService) PayFees(u *domain.User) (*domain.User, error) {
	if err := s.Users.MarkFeesPaid(u.ID); err != nil {
		return nil, err
	}
	paid := *u
	paid.FeesPaid = true
	s.Hub.Publish(broadcast.Event{UserID: u.ID, Name: u.Name, Email: u.Email})
	return &paid, nil
}
