package httpserver

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domain "github.com/bryanwahyu/textlens/internal/domain/analysis"
)

// notBlank rejects whitespace-only strings; ozzo's Required only
// catches the empty string.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

// createRequest is the POST /api/analyze body.
type createRequest struct {
	Text string `json:"text"`
}

func (c createRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Text, validation.Required, validation.By(notBlank)),
	)
}

// updateRequest is the PUT /api/analyze body.
type updateRequest struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (u updateRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Text, validation.Required, validation.By(notBlank)),
	)
}

// deleteRequest is the optional DELETE /api/analyze body; the id may
// also arrive as a query parameter.
type deleteRequest struct {
	ID string `json:"id"`
}

// listResponse wraps the GET /api/analyze collection view.
type listResponse struct {
	Analyses []domain.ListItem `json:"analyses"`
}
