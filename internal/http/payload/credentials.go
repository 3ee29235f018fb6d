package payload

import (
	"bookmarkd/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// CredentialsRequest is the shared signup/login payload.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required),
	)
}

func (c CredentialsRequest) ToMessage() core.CredentialsMessage {
	return core.CredentialsMessage{
		Email:    c.Email,
		Password: c.Password,
	}
}
