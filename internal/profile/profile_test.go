package profile

import (
	"strings"
	"testing"

	"github.com/clauscan/clauscan/internal/lang"
)

func TestProfile_TypePriorityOrder(t *testing.T) {
	p := New(nil)

	// Both names appear; "Terms of Service" is higher priority.
	text := "This privacy policy forms part of our terms of service. It governs your use."
	got := p.Profile(text, text)

	if got.Type != "Terms of Service" {
		t.Errorf("expected Terms of Service, got %q", got.Type)
	}
}

func TestProfile_TitleFromLines(t *testing.T) {
	p := New(nil)

	raw := "ACME Widgets\nMaster Service Agreement\nEffective as of the date below.\nLots of body text follows here."
	got := p.Profile(raw, strings.ReplaceAll(raw, "\n", " "))

	if got.Title != "Master Service Agreement" {
		t.Errorf("expected title from line scan, got %q", got.Title)
	}
	if got.Type != "Service Agreement" {
		t.Errorf("expected Service Agreement, got %q", got.Type)
	}
	if got.Purpose == "" {
		t.Error("expected a templated purpose")
	}
}

func TestProfile_TitleLengthBounds(t *testing.T) {
	p := New(nil)

	// "Terms" alone is under 10 chars; the next qualifying line wins.
	raw := "Terms\nWebsite Terms and Conditions of Use\nMore text follows in the body."
	got := p.Profile(raw, strings.ReplaceAll(raw, "\n", " "))

	if got.Title != "Website Terms and Conditions of Use" {
		t.Errorf("expected second line as title, got %q", got.Title)
	}
}

func TestProfile_SynthesizedTitleFromOrganization(t *testing.T) {
	p := New(lang.NewHeuristic())

	// No line qualifies as a title; synthesize from the first ORG.
	raw := "Globex Corp provides widgets.\nAll users are bound by this contract from first use."
	got := p.Profile(raw, strings.ReplaceAll(raw, "\n", " "))

	if got.Type != "Contract" {
		t.Fatalf("expected Contract, got %q", got.Type)
	}
	if got.Title != "Globex Corp Contract" {
		t.Errorf("expected synthesized title, got %q", got.Title)
	}
}

func TestProfile_DefaultsWithoutSignals(t *testing.T) {
	p := New(nil)

	raw := "Some body text.\nNothing that looks like identity metadata here."
	got := p.Profile(raw, strings.ReplaceAll(raw, "\n", " "))

	if got.Type != "Legal Document" {
		t.Errorf("expected default type, got %q", got.Type)
	}
	if got.Title != "Legal Document" {
		t.Errorf("expected type-only title, got %q", got.Title)
	}
	if got.Purpose == "" {
		t.Error("expected default purpose")
	}
}
