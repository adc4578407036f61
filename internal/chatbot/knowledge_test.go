package chatbot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	kb := Default()
	if err := kb.validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if kb.OwnerFirstName() != "Adarsh" {
		t.Errorf("OwnerFirstName() = %q, want %q", kb.OwnerFirstName(), "Adarsh")
	}
	if len(kb.AllSkills()) == 0 {
		t.Error("AllSkills() is empty")
	}
}

func TestLoad_FromYAML(t *testing.T) {
	content := `
owner: Jane Doe
assistant: Hal
skills:
  frontend: [React]
  backend: [Go]
projects:
  - title: Demo App
    description: A demo.
    technologies: [Go]
    github_url: https://example.com/demo
contact: via carrier pigeon
`
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	kb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if kb.Owner != "Jane Doe" {
		t.Errorf("Owner = %q, want %q", kb.Owner, "Jane Doe")
	}
	if len(kb.Projects) != 1 || kb.Projects[0].Title != "Demo App" {
		t.Errorf("Projects = %+v, want one Demo App entry", kb.Projects)
	}
}

func TestLoad_RejectsMissingOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	if err := os.WriteFile(path, []byte("projects:\n  - title: X\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a knowledge file without an owner")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() did not fail for a missing file")
	}
}
