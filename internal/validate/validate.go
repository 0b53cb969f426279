// Package validate applies the per-field contracts for item reports, status
// updates, list filters, and admin login. All string fields are trimmed
// before checks, validation stops at the first failing field, and no
// operation touches the store unless every field passes.
package validate

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/quest-campus/lostfound/internal/model"
	"github.com/quest-campus/lostfound/internal/sqlguard"
)

// injectionMessage is surfaced whenever the injection filter rejects a field.
const injectionMessage = "Input rejected: potentially dangerous content detected. SQL-like patterns are not allowed."

// FieldError names the first failing field and the rule it broke.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fail(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// ItemInput holds the raw report fields from a create or replace request.
// Validation trims and normalizes the fields in place.
type ItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	ItemDate    string `json:"itemDate"`
	ContactInfo string `json:"contactInfo"`
	Status      string `json:"status"`
}

// Item validates a full report. Status is optional here: creation ignores it
// (the server forces pending) and replacement defaults it to pending.
func (in *ItemInput) Validate() *FieldError {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fail("title", "Title is required.")
	}
	if utf8.RuneCountInString(in.Title) > 100 {
		return fail("title", "Title must not exceed 100 characters.")
	}
	if sqlguard.Detect(in.Title) {
		return fail("title", injectionMessage)
	}

	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return fail("description", "Description is required.")
	}
	if utf8.RuneCountInString(in.Description) > 1000 {
		return fail("description", "Description must not exceed 1000 characters.")
	}
	if sqlguard.Detect(in.Description) {
		return fail("description", injectionMessage)
	}

	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	if !model.ValidCategory(in.Category) {
		return fail("category", "Category must be either lost or found.")
	}

	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		return fail("location", "Location is required.")
	}
	if utf8.RuneCountInString(in.Location) > 120 {
		return fail("location", "Location must not exceed 120 characters.")
	}
	if sqlguard.Detect(in.Location) {
		return fail("location", injectionMessage)
	}

	date, err := normalizeDate(strings.TrimSpace(in.ItemDate))
	if err != nil {
		if in.ItemDate == "" {
			return fail("itemDate", "Date is required.")
		}
		return fail("itemDate", "Date must be in a valid format (YYYY-MM-DD).")
	}
	in.ItemDate = date

	in.ContactInfo = strings.TrimSpace(in.ContactInfo)
	if in.ContactInfo == "" {
		return fail("contactInfo", "Contact information is required.")
	}
	if utf8.RuneCountInString(in.ContactInfo) > 120 {
		return fail("contactInfo", "Contact information must not exceed 120 characters.")
	}
	if utf8.RuneCountInString(in.ContactInfo) < 3 || strings.ContainsAny(in.ContactInfo, "<>") {
		return fail("contactInfo", "Contact information contains invalid characters.")
	}
	if sqlguard.Detect(in.ContactInfo) {
		return fail("contactInfo", injectionMessage)
	}

	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	if in.Status != "" && !model.ValidStatus(in.Status) {
		return fail("status", "Status must be pending, claimed, or resolved.")
	}

	return nil
}

// StatusUpdate validates the target status of a lifecycle transition.
func StatusUpdate(status string) (string, *FieldError) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !model.ValidStatus(status) {
		return "", fail("status", "Status update must be pending, claimed, or resolved.")
	}
	return status, nil
}

// ID validates a path id parameter as a positive integer.
func ID(raw string) (int64, *FieldError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fail("id", "Item ID must be a positive integer.")
	}
	return id, nil
}

// ListFilters validates the optional category/status query filters,
// returning them lowercase-normalized.
func ListFilters(category, status string) (string, string, *FieldError) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && !model.ValidCategory(category) {
		return "", "", fail("category", "Category filter must be either lost or found.")
	}

	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !model.ValidStatus(status) {
		return "", "", fail("status", "Status filter must be pending, claimed, or resolved.")
	}

	return category, status, nil
}

// Login validates admin credentials before they reach the auth gate. The
// username is returned trimmed; the password is never trimmed.
func Login(username, password string) (string, *FieldError) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fail("username", "Username is required.")
	}
	if utf8.RuneCountInString(username) > 50 {
		return "", fail("username", "Username must not exceed 50 characters.")
	}
	if sqlguard.Detect(username) {
		return "", fail("username", injectionMessage)
	}

	if password == "" {
		return "", fail("password", "Password is required.")
	}
	if utf8.RuneCountInString(password) > 128 {
		return "", fail("password", "Password must not exceed 128 characters.")
	}

	return username, nil
}

// normalizeDate accepts a calendar date, tolerating a full RFC 3339
// timestamp, and normalizes it to YYYY-MM-DD.
func normalizeDate(raw string) (string, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02"), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
