package domain

// Client is the borrower / saver. Only the fields receipts need are loaded.
type Client struct {
	ClientID     string `json:"clientID"`
	ClientNumber string `json:"clientNumber"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

// FullName joins first and last name.
func (c Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
