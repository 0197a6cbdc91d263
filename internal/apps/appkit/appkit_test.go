package appkit

import "testing"

func TestFit(t *testing.T) {
	got := Fit("abcdef\nxy\nz\nextra", 3, 3)
	if got != "abc\nxy\nz" {
		t.Fatalf("unexpected fit %q", got)
	}
	if got := Fit("a", 5, 3); got != "a\n\n" {
		t.Fatalf("expected padded rows, got %q", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab" {
		t.Fatalf("unexpected center %q", got)
	}
	if got := Center("abcdef", 4); got != "abcdef" {
		t.Fatalf("wide strings are left alone, got %q", got)
	}
}
