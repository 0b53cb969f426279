package validate

import (
	"strings"
	"testing"
)

func validInput() ItemInput {
	return ItemInput{
		Title:       "Black wallet",
		Description: "Leather wallet with a student ID inside",
		Category:    "lost",
		Location:    "Library entrance",
		ItemDate:    "2026-03-14",
		ContactInfo: "jane.doe@campus.edu",
	}
}

func TestValidateItemOK(t *testing.T) {
	in := validInput()
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateItemTrimsAndNormalizes(t *testing.T) {
	in := validInput()
	in.Title = "  Black wallet  "
	in.Category = " LOST "
	in.Status = " PENDING "
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if in.Title != "Black wallet" {
		t.Errorf("expected trimmed title, got %q", in.Title)
	}
	if in.Category != "lost" {
		t.Errorf("expected normalized category, got %q", in.Category)
	}
	if in.Status != "pending" {
		t.Errorf("expected normalized status, got %q", in.Status)
	}
}

func TestValidateItemFirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ItemInput)
		field   string
		message string
	}{
		{"missing title", func(in *ItemInput) { in.Title = "  " }, "title", "Title is required."},
		{"title too long", func(in *ItemInput) { in.Title = strings.Repeat("x", 101) }, "title", "Title must not exceed 100 characters."},
		{"injection in title", func(in *ItemInput) { in.Title = "' OR 1=1 --" }, "title", ""},
		{"missing description", func(in *ItemInput) { in.Description = "" }, "description", "Description is required."},
		{"description too long", func(in *ItemInput) { in.Description = strings.Repeat("x", 1001) }, "description", ""},
		{"bad category", func(in *ItemInput) { in.Category = "stolen" }, "category", "Category must be either lost or found."},
		{"missing location", func(in *ItemInput) { in.Location = "" }, "location", "Location is required."},
		{"injection in location", func(in *ItemInput) { in.Location = "1; DROP TABLE items" }, "location", ""},
		{"missing date", func(in *ItemInput) { in.ItemDate = "" }, "itemDate", "Date is required."},
		{"bad date", func(in *ItemInput) { in.ItemDate = "14/03/2026" }, "itemDate", "Date must be in a valid format (YYYY-MM-DD)."},
		{"missing contact", func(in *ItemInput) { in.ContactInfo = "" }, "contactInfo", "Contact information is required."},
		{"contact too short", func(in *ItemInput) { in.ContactInfo = "ab" }, "contactInfo", "Contact information contains invalid characters."},
		{"contact angle brackets", func(in *ItemInput) { in.ContactInfo = "<script>alert(1)</script>" }, "contactInfo", ""},
		{"injection in contact", func(in *ItemInput) { in.ContactInfo = "UNION SELECT password FROM users" }, "contactInfo", ""},
		{"bad status", func(in *ItemInput) { in.Status = "archived" }, "status", "Status must be pending, claimed, or resolved."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, err.Field)
			}
			if tt.message != "" && err.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, err.Message)
			}
		})
	}
}

func TestValidateItemDateRFC3339(t *testing.T) {
	in := validInput()
	in.ItemDate = "2026-03-14T09:30:00Z"
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if in.ItemDate != "2026-03-14" {
		t.Errorf("expected date normalized to 2026-03-14, got %q", in.ItemDate)
	}
}

func TestStatusUpdate(t *testing.T) {
	for _, s := range []string{"pending", "claimed", "resolved", " CLAIMED "} {
		if _, err := StatusUpdate(s); err != nil {
			t.Errorf("expected %q to validate, got %v", s, err)
		}
	}

	if _, err := StatusUpdate("active"); err == nil {
		t.Error("expected error for unknown status")
	}
	if _, err := StatusUpdate(""); err == nil {
		t.Error("expected error for empty status")
	}

	status, _ := StatusUpdate(" RESOLVED ")
	if status != "resolved" {
		t.Errorf("expected normalized status, got %q", status)
	}
}

func TestID(t *testing.T) {
	if id, err := ID("42"); err != nil || id != 42 {
		t.Errorf("expected 42, got %d (%v)", id, err)
	}
	for _, raw := range []string{"0", "-1", "abc", "1.5", ""} {
		if _, err := ID(raw); err == nil {
			t.Errorf("expected error for id %q", raw)
		}
	}
}

func TestListFilters(t *testing.T) {
	category, status, err := ListFilters(" LOST ", "pending")
	if err != nil {
		t.Fatalf("ListFilters: %v", err)
	}
	if category != "lost" || status != "pending" {
		t.Errorf("expected normalized filters, got %q/%q", category, status)
	}

	if _, _, err := ListFilters("", ""); err != nil {
		t.Errorf("expected empty filters to pass, got %v", err)
	}
	if _, _, err := ListFilters("misplaced", ""); err == nil {
		t.Error("expected error for bad category filter")
	}
	if _, _, err := ListFilters("", "gone"); err == nil {
		t.Error("expected error for bad status filter")
	}
}

func TestLogin(t *testing.T) {
	username, err := Login(" admin ", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if username != "admin" {
		t.Errorf("expected trimmed username, got %q", username)
	}

	if _, err := Login("", "secret"); err == nil {
		t.Error("expected error for missing username")
	}
	if _, err := Login(strings.Repeat("a", 51), "secret"); err == nil {
		t.Error("expected error for long username")
	}
	if _, err := Login("admin' OR '1'='1", "secret"); err == nil {
		t.Error("expected error for injection in username")
	}
	if _, err := Login("admin", ""); err == nil {
		t.Error("expected error for missing password")
	}
	if _, err := Login("admin", strings.Repeat("p", 129)); err == nil {
		t.Error("expected error for long password")
	}
}
