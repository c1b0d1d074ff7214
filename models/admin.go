package models

// Principal is the authenticated staff member behind a request.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
