package extract

import (
	"strings"
	"testing"

	"github.com/clauscan/clauscan/internal/lang"
	"github.com/clauscan/clauscan/internal/model"
)

func analyze(t *testing.T, text string) *lang.Doc {
	t.Helper()
	doc, err := lang.NewHeuristic().Analyze(text)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	return doc
}

func TestKeyPoints_ModalAndPhraseAndDefinedTerm(t *testing.T) {
	e := NewKeyPointExtractor(5)

	body := "The Supplier shall deliver the goods on time. " +
		"This clause applies notwithstanding anything to the contrary. " +
		"The CONFIDENTIAL material stays protected at all times. " +
		"Nothing interesting happens in this sentence at all."
	points := e.Extract(analyze(t, body), body)

	if len(points) != 3 {
		t.Fatalf("expected 3 key points, got %d: %v", len(points), points)
	}
	if !strings.Contains(points[0], "shall deliver") {
		t.Errorf("expected modal sentence first, got %q", points[0])
	}
	if !strings.Contains(points[1], "notwithstanding") {
		t.Errorf("expected legal-phrase sentence second, got %q", points[1])
	}
	if !strings.Contains(points[2], "CONFIDENTIAL") {
		t.Errorf("expected defined-term sentence third, got %q", points[2])
	}
}

func TestKeyPoints_MayNotQualifies(t *testing.T) {
	e := NewKeyPointExtractor(5)

	body := "The licensee may not sublicense the software to anyone."
	points := e.Extract(analyze(t, body), body)

	if len(points) != 1 {
		t.Fatalf("expected 1 key point, got %d", len(points))
	}
}

func TestKeyPoints_CappedAtMax(t *testing.T) {
	e := NewKeyPointExtractor(5)

	var sentences []string
	for i := 0; i < 8; i++ {
		sentences = append(sentences, "The contractor shall complete the assigned milestone on schedule.")
	}
	body := strings.Join(sentences, " ")
	points := e.Extract(analyze(t, body), body)

	if len(points) != 5 {
		t.Errorf("expected cap of 5 key points, got %d", len(points))
	}
}

func TestKeyPoints_ShortUppercaseTokenDoesNotQualify(t *testing.T) {
	e := NewKeyPointExtractor(5)

	body := "The new API spec is documented on the internal wiki page."
	points := e.Extract(analyze(t, body), body)

	if len(points) != 0 {
		t.Errorf("expected no key points, got %v", points)
	}
}

func TestObligations_OrgSubjectAttribution(t *testing.T) {
	e := NewObligationExtractor()

	body := "ACME Corp shall deliver goods within 30 days."
	obligations := e.Extract(analyze(t, body), body)

	if obligations.Len() != 1 {
		t.Fatalf("expected 1 party, got %d", obligations.Len())
	}
	party := obligations.Parties()[0]
	if party.AllParties {
		t.Fatal("expected a named party, got All Parties")
	}
	if party.Name != "ACME" {
		t.Errorf("expected party %q, got %q", "ACME", party.Name)
	}
	if len(obligations.Sentences(party)) != 1 {
		t.Errorf("expected 1 obligation sentence, got %d", len(obligations.Sentences(party)))
	}
}

func TestObligations_NoAnalyzerAttributesToAllParties(t *testing.T) {
	e := NewObligationExtractor()

	obligations := e.Extract(nil, "ACME Corp shall deliver goods within 30 days.")

	if obligations.Len() != 1 {
		t.Fatalf("expected 1 party, got %d", obligations.Len())
	}
	if !obligations.Parties()[0].AllParties {
		t.Errorf("expected All Parties bucket, got %+v", obligations.Parties()[0])
	}
}

func TestObligations_FreshAttributionPerSentence(t *testing.T) {
	e := NewObligationExtractor()

	body := "ACME Corp shall deliver the goods promptly. The premises must be vacated by month end."
	obligations := e.Extract(analyze(t, body), body)

	if obligations.Len() != 2 {
		t.Fatalf("expected 2 parties, got %d", obligations.Len())
	}
	if obligations.Parties()[0].Name != "ACME" {
		t.Errorf("expected first party ACME, got %+v", obligations.Parties()[0])
	}
	if !obligations.Parties()[1].AllParties {
		t.Errorf("expected second bucket All Parties, got %+v", obligations.Parties()[1])
	}
}

func TestObligations_NonObligationSentencesIgnored(t *testing.T) {
	e := NewObligationExtractor()

	body := "This agreement has two parties. They like working together."
	obligations := e.Extract(analyze(t, body), body)

	if obligations.Len() != 0 {
		t.Errorf("expected no obligations, got %d parties", obligations.Len())
	}
}

func TestDates_FallbackDeletionTimeframe(t *testing.T) {
	e := NewDateExtractor(5)

	entries := e.Extract(nil, "Data must be deleted within 30 days of request.")

	if len(entries) != 1 {
		t.Fatalf("expected 1 date entry, got %d: %+v", len(entries), entries)
	}
	entry := entries[0]
	if entry.Text != "30 days" {
		t.Errorf("expected date text %q, got %q", "30 days", entry.Text)
	}
	if entry.Category != model.DateCategoryDeletion {
		t.Errorf("expected category %q, got %q", model.DateCategoryDeletion, entry.Category)
	}
	if !strings.Contains(entry.Description, "Deletion timeframe") {
		t.Errorf("expected description to mention deletion timeframe, got %q", entry.Description)
	}
}

func TestDates_NoticeOutranksDeletion(t *testing.T) {
	e := NewDateExtractor(5)

	// Both "notice" and "delete" signals present: the notice rule is
	// checked first and wins.
	entries := e.Extract(nil, "We will delete the account 14 days after notice is given.")

	if len(entries) != 1 {
		t.Fatalf("expected 1 date entry, got %d", len(entries))
	}
	if entries[0].Category != model.DateCategoryNotice {
		t.Errorf("expected category %q, got %q", model.DateCategoryNotice, entries[0].Category)
	}
}

func TestDates_AgeRequirement(t *testing.T) {
	e := NewDateExtractor(5)

	entries := e.Extract(nil, "Users must be at least 13 years old to register an account.")

	if len(entries) != 1 {
		t.Fatalf("expected 1 date entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].Category != model.DateCategoryAge {
		t.Errorf("expected category %q, got %q", model.DateCategoryAge, entries[0].Category)
	}
	if entries[0].Text != "13 years old" {
		t.Errorf("expected text %q, got %q", "13 years old", entries[0].Text)
	}
}

func TestDates_GeneralTimeframeDefault(t *testing.T) {
	e := NewDateExtractor(5)

	entries := e.Extract(nil, "The term continues for 12 months from the effective date.")

	if len(entries) != 1 {
		t.Fatalf("expected 1 date entry, got %d", len(entries))
	}
	if entries[0].Category != model.DateCategoryGeneral {
		t.Errorf("expected category %q, got %q", model.DateCategoryGeneral, entries[0].Category)
	}
	if !strings.Contains(entries[0].Description, "Timeframe:") {
		t.Errorf("expected generic description, got %q", entries[0].Description)
	}
}

func TestDates_AnalyzerEntities(t *testing.T) {
	e := NewDateExtractor(5)

	body := "The subscription renews on January 15, 2025. Notice must be given 30 days in advance."
	entries := e.Extract(analyze(t, body), body)

	if len(entries) != 2 {
		t.Fatalf("expected 2 date entries, got %d: %+v", len(entries), entries)
	}

	byText := map[string]model.DateEntry{}
	for _, entry := range entries {
		byText[entry.Text] = entry
	}
	if notice, ok := byText["30 days"]; !ok || notice.Category != model.DateCategoryNotice {
		t.Errorf("expected 30 days as notice period, got %+v", notice)
	}
}

func TestDates_ContextWindow(t *testing.T) {
	e := NewDateExtractor(5)

	body := "one two three four five six seven must be deleted within 30 days after a b c d e f g"
	entries := e.Extract(nil, body)

	if len(entries) != 1 {
		t.Fatalf("expected 1 date entry, got %d", len(entries))
	}
	context := entries[0].Context
	if strings.Contains(context, "two") {
		t.Errorf("context should be capped at 5 tokens before the match, got %q", context)
	}
	if !strings.Contains(context, "30 days") {
		t.Errorf("context should contain the match, got %q", context)
	}
	if strings.Contains(context, " g") {
		t.Errorf("context should be capped at 5 tokens after the match, got %q", context)
	}
}
