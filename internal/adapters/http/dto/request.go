package dto

import "github.com/jsamuelsen11/greeter/internal/domain"

const msgRequired = "is required"

// CapitalizeRequest represents the JSON body for POST /api/v1/capitalize.
// Text is a pointer so that an absent field can be told apart from an empty
// string, which is valid input.
type CapitalizeRequest struct {
	Text *string `json:"text"`
}

// Validate checks that the text field is present.
// Returns a *domain.ValidationError if it is missing.
func (r *CapitalizeRequest) Validate() error {
	if r.Text == nil {
		return domain.NewFieldError("text", msgRequired)
	}
	return nil
}
