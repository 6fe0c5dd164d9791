package domain

type User struct {
	ID       string `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Name     string `db:"name" json:"name"`
	Hash     string `db:"password_hash" json:"-"`
	FeesPaid bool   `db:"fees_paid" json:"feesPaid"`
}
