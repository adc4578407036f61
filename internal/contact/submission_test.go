package contact

import (
	"strings"
	"testing"
)

func TestParseSubmission_Valid(t *testing.T) {
	sub, errs := ParseSubmission("Jo Smith", "Jo.Smith@Example.COM", "Hello there", "I would like to get in touch.")
	if errs != nil {
		t.Fatalf("ParseSubmission() errors = %v, want none", errs)
	}

	if sub.Email != "jo.smith@example.com" {
		t.Errorf("Email = %q, want lowercased %q", sub.Email, "jo.smith@example.com")
	}
	if sub.Name != "Jo Smith" {
		t.Errorf("Name = %q, want %q", sub.Name, "Jo Smith")
	}
}

func TestParseSubmission_EscapesMessage(t *testing.T) {
	sub, errs := ParseSubmission("Jo Smith", "a@b.com", "Hello there", "tags <b>bold</b> & more")
	if errs != nil {
		t.Fatalf("ParseSubmission() errors = %v, want none", errs)
	}

	for _, c := range []string{"<", ">"} {
		if strings.Contains(sub.Message, c) {
			t.Errorf("Message %q contains unescaped %q", sub.Message, c)
		}
	}
	if !strings.Contains(sub.Message, "&lt;b&gt;") {
		t.Errorf("Message = %q, want escaped tags", sub.Message)
	}
	if !strings.Contains(sub.Message, "&amp;") {
		t.Errorf("Message = %q, want escaped ampersand", sub.Message)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"gmail dots removed", "J.o.Smith@Gmail.com", "josmith@gmail.com"},
		{"googlemail folds to gmail", "jo.smith@GoogleMail.com", "josmith@gmail.com"},
		{"other domains keep dots", "jo.smith@example.com", "jo.smith@example.com"},
		{"lowercase and trim", "  Jo@Example.COM  ", "jo@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeEmail(tt.in); got != tt.want {
				t.Errorf("normalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSubmission_CanonicalizesGmail(t *testing.T) {
	sub, errs := ParseSubmission("Jo Smith", "J.o.Smith@Gmail.com", "Hello there", "I would like to get in touch.")
	if errs != nil {
		t.Fatalf("ParseSubmission() errors = %v, want none", errs)
	}
	if sub.Email != "josmith@gmail.com" {
		t.Errorf("Email = %q, want canonical %q", sub.Email, "josmith@gmail.com")
	}
}

func TestParseSubmission_TrimsFields(t *testing.T) {
	sub, errs := ParseSubmission("  Jo Smith  ", " a@b.com ", "  Hello there  ", "  plenty of message text  ")
	if errs != nil {
		t.Fatalf("ParseSubmission() errors = %v, want none", errs)
	}
	if sub.Subject != "Hello there" {
		t.Errorf("Subject = %q, want trimmed", sub.Subject)
	}
}

// three fields violated at once must yield exactly three entries
func TestParseSubmission_ReportsAllViolations(t *testing.T) {
	sub, errs := ParseSubmission("J", "a@b.com", "Hi", "short")
	if sub != nil {
		t.Fatal("ParseSubmission() returned a submission for invalid input")
	}
	if len(errs) != 3 {
		t.Fatalf("ParseSubmission() errors = %d, want 3: %v", len(errs), errs)
	}

	wantFields := []string{"name", "subject", "message"}
	for i, want := range wantFields {
		if errs[i].Field != want {
			t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, want)
		}
	}
}

func TestParseSubmission_FieldRules(t *testing.T) {
	longName := strings.Repeat("a", 51)
	longSubject := strings.Repeat("s", 101)
	longMessage := strings.Repeat("m", 1001)

	tests := []struct {
		name      string
		inName    string
		inEmail   string
		inSubject string
		inMessage string
		wantField string
	}{
		{"name too long", longName, "a@b.com", "Hello there", "a perfectly fine message", "name"},
		{"name with digits", "Jo5", "a@b.com", "Hello there", "a perfectly fine message", "name"},
		{"bad email", "Jo Smith", "not-an-email", "Hello there", "a perfectly fine message", "email"},
		{"email with display name", "Jo Smith", "Jo <a@b.com>", "Hello there", "a perfectly fine message", "email"},
		{"empty email", "Jo Smith", "", "Hello there", "a perfectly fine message", "email"},
		{"subject too long", "Jo Smith", "a@b.com", longSubject, "a perfectly fine message", "subject"},
		{"message too long", "Jo Smith", "a@b.com", "Hello there", longMessage, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ParseSubmission(tt.inName, tt.inEmail, tt.inSubject, tt.inMessage)
			if len(errs) != 1 {
				t.Fatalf("errors = %v, want exactly one", errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestParseSubmission_UnicodeName(t *testing.T) {
	_, errs := ParseSubmission("Адарш Кумар", "a@b.com", "Hello there", "a perfectly fine message")
	if errs != nil {
		t.Errorf("ParseSubmission() errors = %v, want none for unicode letters", errs)
	}
}
