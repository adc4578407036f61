package chatbot

import (
	"strings"
	"testing"
)

func newTestResponder() *Responder {
	return NewResponder(Default())
}

func TestResponder_CreatorMentionsOwner(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond("who created you?")
	if !strings.Contains(reply, "Adarsh Kumar Vishwakarma") {
		t.Errorf("Respond(creator) = %q, want owner's name", reply)
	}
}

func TestResponder_ProjectsEnumeratesAllTitles(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond("tell me about your projects")
	for _, title := range Default().ProjectTitles() {
		if !strings.Contains(reply, title) {
			t.Errorf("Respond(projects) = %q, missing project %q", reply, title)
		}
	}
}

// a named project must win over the general projects rule
func TestResponder_NamedProjectBeatsGeneralRule(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond("what is the FooKart project about?")
	if !strings.Contains(reply, "FooKart") || !strings.Contains(reply, "github.com") {
		t.Errorf("Respond(fookart) = %q, want the FooKart project details", reply)
	}

	reply = r.Respond("show me the e-commerce project")
	if !strings.Contains(reply, "E-Commerce Platform") {
		t.Errorf("Respond(ecommerce) = %q, want the e-commerce project details", reply)
	}
}

func TestResponder_Idempotent(t *testing.T) {
	r := newTestResponder()

	inputs := []string{"hello", "what are your skills?", "who created you?", "gibberish zzz"}
	for _, in := range inputs {
		first := r.Respond(in)
		second := r.Respond(in)
		if first != second {
			t.Errorf("Respond(%q) not idempotent: %q != %q", in, first, second)
		}
	}
}

func TestResponder_AlwaysNonEmpty(t *testing.T) {
	r := newTestResponder()

	inputs := []string{"", "   ", "xyzzy", "tell me a joke", "????"}
	for _, in := range inputs {
		if r.Respond(in) == "" {
			t.Errorf("Respond(%q) returned empty string", in)
		}
	}
}

func TestResponder_Rules(t *testing.T) {
	r := newTestResponder()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greeting", "hello there", "Hello!"},
		{"skills general", "what are your skills?", "Angular"},
		{"skills frontend", "frontend stack?", "TypeScript"},
		{"skills backend", "do you know java?", "Spring Boot"},
		{"skills databases", "which databases do you use?", "MongoDB"},
		{"tools", "what software do you work with?", "Docker"},
		{"experience", "what is your experience?", "Edulab"},
		{"contact", "how can I reach you?", "contact form"},
		{"education", "where did you study?", "Computer Science"},
		{"thanks", "thank you!", "welcome"},
		{"fallback", "completely unrelated question", "portfolio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := r.Respond(tt.input)
			if !strings.Contains(reply, tt.want) {
				t.Errorf("Respond(%q) = %q, want it to contain %q", tt.input, reply, tt.want)
			}
		})
	}
}

// "hi" must match the word, not a substring of e.g. "this"
func TestResponder_GreetingNeedsWholeWord(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond("is this architecture scalable?")
	if strings.Contains(reply, "Hello!") {
		t.Errorf("Respond(%q) matched the greeting rule: %q", "is this architecture scalable?", reply)
	}
}
