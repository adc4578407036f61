// Package contact defines the contact-form submission model and its validation rules.
package contact

import (
	"fmt"
	"html"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

// field length limits
const (
	NameMinLen    = 2
	NameMaxLen    = 50
	SubjectMinLen = 5
	SubjectMaxLen = 100
	MessageMinLen = 10
	MessageMaxLen = 1000
)

// Submission is a validated, normalized contact-form submission.
// Email is lowercased and Gmail-canonicalized, and Message is HTML-escaped, so it is safe to
// interpolate into the generated email bodies.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors lists every violated rule, in field order.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// ParseSubmission validates raw form input and returns the normalized submission.
// All fields are checked so the caller gets every violation, not just the first.
func ParseSubmission(name, email, subject, message string) (*Submission, FieldErrors) {
	var errs FieldErrors

	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < NameMinLen || n > NameMaxLen {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: fmt.Sprintf("name must be between %d and %d characters", NameMinLen, NameMaxLen),
		})
	} else if !lettersAndSpacesOnly(name) {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "name can only contain letters and spaces",
		})
	}

	email = normalizeEmail(email)
	if !validEmail(email) {
		errs = append(errs, FieldError{
			Field:   "email",
			Message: "please provide a valid email address",
		})
	}

	subject = strings.TrimSpace(subject)
	if n := utf8.RuneCountInString(subject); n < SubjectMinLen || n > SubjectMaxLen {
		errs = append(errs, FieldError{
			Field:   "subject",
			Message: fmt.Sprintf("subject must be between %d and %d characters", SubjectMinLen, SubjectMaxLen),
		})
	}

	message = strings.TrimSpace(message)
	if n := utf8.RuneCountInString(message); n < MessageMinLen || n > MessageMaxLen {
		errs = append(errs, FieldError{
			Field:   "message",
			Message: fmt.Sprintf("message must be between %d and %d characters", MessageMinLen, MessageMaxLen),
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: html.EscapeString(message),
	}, nil
}

func lettersAndSpacesOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// normalizeEmail lowercases the address and applies provider-aware
// canonicalization: Gmail ignores dots in the local part and treats
// googlemail.com as an alias of gmail.com, so both collapse to the
// same stored address.
func normalizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return s
	}
	local, domain := s[:at], s[at+1:]

	if domain == "googlemail.com" {
		domain = "gmail.com"
	}
	if domain == "gmail.com" {
		local = strings.ReplaceAll(local, ".", "")
	}
	return local + "@" + domain
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// reject "Name <a@b.com>" forms, the field must be a bare address
	return err == nil && addr.Address == s
}
