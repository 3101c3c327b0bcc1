package validation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/learnaura/feedgate/shared/domain"
	internal_errors "github.com/learnaura/feedgate/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the validate tags on a request DTO. Failures come back as
// Validation errors so they never reach the network.
func Struct(body any) error {
	if err := validate.Struct(body); err != nil {
		return &internal_errors.Validation{Message: "required fields missing"}
	}
	return nil
}

// Decode parses a JSON request body and runs Struct on the result.
func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.Validation{Message: "body is invalid json"}
	}
	return Struct(body)
}

func Credential(cred domain.Credential) error {
	if cred.Empty() {
		return &internal_errors.Validation{Message: "missing credential"}
	}
	return nil
}

func Title(title string) error {
	if !domain.ValidTitle(title) {
		return &internal_errors.Validation{
			Message: fmt.Sprintf("title must be %d-%d characters after trimming", domain.TitleMinLen, domain.TitleMaxLen),
		}
	}
	return nil
}

func Content(content string) error {
	if !domain.ValidContent(content) {
		return &internal_errors.Validation{
			Message: fmt.Sprintf("content must be %d-%d characters after trimming", domain.ContentMinLen, domain.ContentMaxLen),
		}
	}
	return nil
}
