package models

// Client is the subset of the clients table the loan core reads.
type Client struct {
	ClientID     string `db:"client_id"`
	ClientNumber string `db:"client_number"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
}
