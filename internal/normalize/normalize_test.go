package normalize

import "testing"

func TestText_CollapsesWhitespace(t *testing.T) {
	got := Text("This  Agreement\n\tis   made\n\nbetween the parties.")
	want := "This Agreement is made between the parties."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_RemovesBracketsAndParens(t *testing.T) {
	got := Text("The Supplier [1] shall deliver (as defined below) the goods.")
	want := "The Supplier shall deliver the goods."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_NonGreedyRemoval(t *testing.T) {
	// First closing bracket terminates the match; no recursion into nesting.
	got := Text("a [x] b [y] c")
	want := "a b c"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"This  Agreement [2020] is\nmade (effective immediately) today.",
		"  leading and trailing  ",
		"no changes needed",
		"",
	}
	for _, in := range inputs {
		once := Text(in)
		twice := Text(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestText_Empty(t *testing.T) {
	if got := Text("   \n\t  "); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
