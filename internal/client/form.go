package client

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Form holds the draft values of the create/edit dialog.
type Form struct {
	Name        string
	Description string
	Status      string
	DueDate     string
}

// FieldErrors maps field names to validation messages.
type FieldErrors map[string]string

// Ok reports whether the form passed validation.
func (e FieldErrors) Ok() bool {
	return len(e) == 0
}

// Validate runs the client-side checks: name required and at least three
// characters after trimming, due date required and well-formed, and —
// only for new projects — not before today. Server validation still runs
// independently on submit.
func (f Form) Validate(editing bool, today time.Time) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Project name is required"
	} else if len(name) < 3 {
		errs["name"] = "Project name must be at least 3 characters"
	}

	switch {
	case f.DueDate == "":
		errs["due_date"] = "Due date is required"
	case !datePattern.MatchString(f.DueDate):
		errs["due_date"] = "Invalid date format"
	case !editing:
		if due, err := time.Parse("2006-01-02", f.DueDate); err == nil {
			day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			if due.Before(day) {
				errs["due_date"] = "Due date cannot be in the past"
			}
		}
	}

	return errs
}
