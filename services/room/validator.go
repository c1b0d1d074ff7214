package room

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"hoteladmin/models"

	"github.com/go-playground/validator/v10"
)

const (
	msgFillAllFields = "Please fill in all fields"
	msgTooManyImages = "Maximum 5 images allowed"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

// Error collapses missing-field errors into the single form-level message shown
// on the rooms page.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(v))
	missing := false
	for _, e := range v {
		if e.Message == "is required" {
			missing = true
			continue
		}
		msgs = append(msgs, e.Message)
	}
	if missing {
		msgs = append([]string{msgFillAllFields}, msgs...)
	}
	return strings.Join(msgs, ". ")
}

type RoomValidator struct {
	validate *validator.Validate
}

func NewRoomValidator() *RoomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &RoomValidator{validate: v}
}

// Validate checks a draft. pending is the number of images still to be uploaded.
func (v *RoomValidator) Validate(draft *models.RoomDraft, pending int) error {
	var errs ValidationErrors
	if err := v.validate.Struct(draft); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		errs = append(errs, translateValidationErrors(validationErrs)...)
	}
	errs = append(errs, validateImageCount(len(draft.Images)+pending)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateImageCount(total int) ValidationErrors {
	switch {
	case total == 0:
		return ValidationErrors{{Field: "images", Message: "is required"}}
	case total > models.MaxRoomImages:
		return ValidationErrors{{Field: "images", Message: msgTooManyImages}}
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, err := range errs {
		field := err.Field()
		msg := err.Error()
		switch err.Tag() {
		case "required":
			msg = "is required"
		case "numeric":
			msg = field + " must be a number"
		}
		// dive errors are reported per element, as images[2].
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		out = append(out, ValidationError{Field: field, Message: msg})
	}
	return out
}

// normalize trims the draft the same way the form check does.
func normalize(draft *models.RoomDraft) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Type = strings.TrimSpace(draft.Type)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Price = strings.TrimSpace(draft.Price)
	draft.Adults = strings.TrimSpace(draft.Adults)
	draft.Children = strings.TrimSpace(draft.Children)
}
