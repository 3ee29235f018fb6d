package payload

import (
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// BookmarksRequest carries the full replacement list for a user's
// bookmarks. An empty list is valid; a missing one is not.
type BookmarksRequest struct {
	Email     string   `json:"email"`
	Bookmarks []string `json:"bookmarks"`
}

func (b BookmarksRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Email, validation.Required, is.Email),
		validation.Field(&b.Bookmarks, validation.NotNil, validation.Each(validation.Required)),
	)
}
