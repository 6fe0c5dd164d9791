package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"studenthub/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash,fees_paid)
	                      VALUES(?,?,?,?,0)`, u.ID, u.Email, u.Name, u.Hash)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,fees_paid FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,fees_paid FROM users WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// All lists every user without the password hash column.
func (r *UserRepo) All() ([]domain.User, error) {
	users := []domain.User{}
	err := r.DB.Select(&users, `SELECT id,email,name,fees_paid FROM users ORDER BY created_at,id`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile writes name and email as one pair so concurrent updates can
// never leave a mixed record. A collision on another user's email surfaces the
// unique index violation.
func (r *UserRepo) UpdateProfile(id, name, email string) error {
	res, err := r.DB.Exec(`UPDATE users SET name=?,email=?,updated_at=CURRENT_TIMESTAMP WHERE id=?`, name, email, id)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrEmailTaken
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFeesPaid flips the flag true exactly once. The WHERE clause makes it a
// compare-and-set: of two racing callers the store serializes, one wins and the
// other sees zero rows and gets ErrAlreadyPaid.
func (r *UserRepo) MarkFeesPaid(id string) error {
	res, err := r.DB.Exec(`UPDATE users SET fees_paid=1,updated_at=CURRENT_TIMESTAMP WHERE id=? AND fees_paid=0`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAlreadyPaid
	}
	return nil
}
