package main

import "testing"

func TestCapitalize(t *testing.T) {
	for in, want := range map[string]string{
		"":    "",
		"mon": "Mon",
		"TUE": "Tue",
		"Wed": "Wed",
		"f":   "F",
	} {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
