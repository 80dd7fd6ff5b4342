package services

import (
	"regexp"
	"testing"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestGenerateSlug(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		slug := GenerateSlug()
		if len(slug) != 8 {
			t.Fatalf("Expected an 8 character slug, got %q", slug)
		}
		if !urlSafe.MatchString(slug) {
			t.Fatalf("Expected a url-safe slug, got %q", slug)
		}
		if seen[slug] {
			t.Fatalf("Generated duplicate slug %q", slug)
		}
		seen[slug] = true
	}
}

func TestGenerateParticipantID(t *testing.T) {
	id := GenerateParticipantID()
	if len(id) != 22 {
		t.Errorf("Expected a 22 character id, got %q", id)
	}
	if !urlSafe.MatchString(id) {
		t.Errorf("Expected a url-safe id, got %q", id)
	}
	if !IsUsableUserCookie(id) {
		t.Errorf("Expected generated id to be usable as a cookie")
	}
	if id == GenerateParticipantID() {
		t.Errorf("Expected two generated ids to differ")
	}
}
