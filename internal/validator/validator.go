package validator

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"content-platform/internal/domain"
)

const (
	MaxCommentLength = 2000
	MinPasswordLen   = 6
)

var (
	usernameRegex    = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	validMediaTypes  = []interface{}{domain.MediaImage, domain.MediaVideo}
	validSourceKinds = toInterfaces(domain.ValidSourceKinds)
	validReasons     = toInterfaces(domain.ValidReportReasons)
	validReportState = toInterfaces(domain.ValidReportStatuses)
)

// Validator provides validation methods for write payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSignup validates a local sign-up request.
func (v *Validator) ValidateSignup(in *domain.SignupInput) error {
	return wrap(validation.ValidateStruct(in,
		validation.Field(&in.Username,
			validation.Required.Error("username_required"),
			validation.RuneLength(3, 50).Error("username_length"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.RuneLength(MinPasswordLen, 128).Error("password_too_short"),
		),
		validation.Field(&in.DisplayName,
			validation.RuneLength(0, 100).Error("display_name_too_long"),
		),
	))
}

// ValidateArticle validates an article submission.
func (v *Validator) ValidateArticle(in *domain.ArticleInput) error {
	return wrap(validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(1, 300).Error("title_too_long"),
		),
		validation.Field(&in.Description,
			validation.RuneLength(0, 1000).Error("description_too_long"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&in.Category,
			validation.Required.Error("category_required"),
			validation.RuneLength(1, 100).Error("category_too_long"),
		),
		validation.Field(&in.Media, validation.By(mediaRule)),
		validation.Field(&in.Sources, validation.Each(validation.By(sourceRule))),
	))
}

// ValidateComment validates comment text.
func (v *Validator) ValidateComment(text string) error {
	return wrap(validation.Errors{
		"text": validation.Validate(strings.TrimSpace(text),
			validation.Required.Error("text_required"),
			validation.RuneLength(1, MaxCommentLength).Error("text_too_long"),
		),
	}.Filter())
}

// ValidateReport validates a report submission.
func (v *Validator) ValidateReport(in *domain.ReportInput) error {
	return wrap(validation.ValidateStruct(in,
		validation.Field(&in.Reason,
			validation.Required.Error("reason_required"),
			validation.In(validReasons...).Error("invalid_reason"),
		),
		validation.Field(&in.Description,
			validation.RuneLength(0, 1000).Error("description_too_long"),
		),
	))
}

// ValidateReportReview validates an admin report status change.
func (v *Validator) ValidateReportReview(in *domain.ReportReview) error {
	return wrap(validation.ValidateStruct(in,
		validation.Field(&in.Status,
			validation.Required.Error("status_required"),
			validation.In(validReportState...).Error("invalid_status"),
		),
		validation.Field(&in.AdminNotes,
			validation.RuneLength(0, 2000).Error("admin_notes_too_long"),
		),
	))
}

// ValidateProfileUpdate validates a partial profile change.
func (v *Validator) ValidateProfileUpdate(u *domain.ProfileUpdate) error {
	return wrap(validation.ValidateStruct(u,
		validation.Field(&u.DisplayName, validation.RuneLength(0, 100).Error("display_name_too_long")),
		validation.Field(&u.Bio, validation.RuneLength(0, 500).Error("bio_too_long")),
		validation.Field(&u.Phone, validation.RuneLength(0, 50).Error("phone_too_long")),
		validation.Field(&u.Website, is.URL.Error("invalid_website_url")),
		validation.Field(&u.ZipCode, validation.RuneLength(0, 20).Error("zip_code_too_long")),
		validation.Field(&u.ProfilePicture, is.URL.Error("invalid_profile_picture_url")),
		validation.Field(&u.ProfileBanner, is.URL.Error("invalid_profile_banner_url")),
	))
}

// ValidateID checks that id is a UUID. field names the parameter in the error.
func (v *Validator) ValidateID(field, id string) error {
	return wrap(validation.Errors{
		field: validation.Validate(id,
			validation.Required.Error(field+"_required"),
			is.UUID.Error("invalid_"+field),
		),
	}.Filter())
}

func mediaRule(value interface{}) error {
	m, ok := value.(*domain.Media)
	if !ok || m == nil || (m.Type == "" && m.URL == "") {
		return nil
	}
	return validation.ValidateStruct(m,
		validation.Field(&m.Type,
			validation.Required.Error("media_type_required"),
			validation.In(validMediaTypes...).Error("invalid_media_type"),
		),
		validation.Field(&m.URL,
			validation.Required.Error("media_url_required"),
			is.URL.Error("invalid_media_url"),
		),
	)
}

func sourceRule(value interface{}) error {
	s, ok := value.(domain.Source)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Kind,
			validation.Required.Error("source_kind_required"),
			validation.In(validSourceKinds...).Error("invalid_source_kind"),
		),
		validation.Field(&s.Value,
			validation.Required.Error("source_value_required"),
		),
	)
}

// wrap turns ozzo errors into a domain validation error that keeps the field
// breakdown reachable through errors.As.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		return &domain.Error{Kind: domain.KindValidation, Message: "validation failed", Err: ve}
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return domain.Internal("validation", err)
	}
	return &domain.Error{Kind: domain.KindValidation, Message: "validation failed", Err: err}
}

// FieldErrors returns the per-field messages of a validation error, or nil.
func FieldErrors(err error) map[string]string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		out[field] = fieldErr.Error()
	}
	return out
}

func toInterfaces[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
