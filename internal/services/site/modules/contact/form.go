package contact

import (
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/voraglobal/internal/services/site/templates"
)

// MaxMessageRunes bounds the free-text message.
const MaxMessageRunes = 2000

// submission is a parsed contact form.
type submission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func parseSubmission(r *http.Request) (submission, error) {
	if err := r.ParseForm(); err != nil {
		return submission{}, err
	}
	field := func(name string) string { return strings.TrimSpace(r.PostForm.Get(name)) }
	return submission{
		Name:    field("name"),
		Email:   field("email"),
		Phone:   field("phone"),
		Subject: field("subject"),
		Message: field("message"),
	}, nil
}

// validate returns field errors keyed by input name. An empty map means
// the submission is acceptable.
func (s submission) validate() map[string]templates.FieldError {
	errs := map[string]templates.FieldError{}
	if s.Name == "" {
		errs["name"] = templates.FieldError{Key: "contact.error.name_required"}
	}
	switch {
	case s.Email == "":
		errs["email"] = templates.FieldError{Key: "contact.error.email_required"}
	case !validEmail(s.Email):
		errs["email"] = templates.FieldError{Key: "contact.error.email_invalid"}
	}
	if utf8.RuneCountInString(s.Message) > MaxMessageRunes {
		errs["message"] = templates.FieldError{Key: "contact.error.message_too_long", Args: []any{MaxMessageRunes}}
	}
	return errs
}

// validEmail accepts a bare address. Display names are rejected so the
// field holds exactly what the visitor typed.
func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == value && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}

func (s submission) view(errs map[string]templates.FieldError) templates.ContactFormView {
	return templates.ContactFormView{
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Subject:    s.Subject,
		Message:    s.Message,
		MaxMessage: MaxMessageRunes,
		Errors:     errs,
	}
}
