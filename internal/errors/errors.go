// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID int64
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id int64) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrValidation signals a missing or empty required field.
type ErrValidation struct {
	Msg string
}

func (e *ErrValidation) Error() string {
	return e.Msg
}

func NewValidation(msg string) error {
	return &ErrValidation{Msg: msg}
}

// ErrEmailExists signals a signup with an already-registered email.
type ErrEmailExists struct {
	Email string
}

func (e *ErrEmailExists) Error() string {
	return fmt.Sprintf("email %s already registered", e.Email)
}

func NewEmailExists(email string) error {
	return &ErrEmailExists{Email: email}
}

// ErrInvalidCredentials signals a failed login. The message stays
// generic on purpose: callers must not learn which half was wrong.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

func NewInvalidCredentials() error {
	return &ErrInvalidCredentials{}
}
