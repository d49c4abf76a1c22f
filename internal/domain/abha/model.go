package abha

import "time"

// Identity is a registered ABHA user. Identities are provisioned out of
// band from seed data and are read-only to this service.
type Identity struct {
	ABHAID    string    `db:"abha_id" json:"abha_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	DOB       string    `db:"dob" json:"dob"`
	Gender    string    `db:"gender" json:"gender"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LoginRequest is the body of POST /abha/login.
type LoginRequest struct {
	ABHAID string `json:"abha_id"`
	Phone  string `json:"phone"`
}

// LoginResponse is the success body of POST /abha/login.
type LoginResponse struct {
	Message     string    `json:"message"`
	AccessToken string    `json:"access_token"`
	ABHAUser    *Identity `json:"abha_user"`
}
