package models

import "testing"

func TestParseScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int32
	}{
		{"bare number", "85", 85},
		{"whitespace", "  70\n", 70},
		{"prose around number", "I would give this 55 out of 100.", 55},
		{"no number", "well done", 0},
		{"empty", "", 0},
		{"negative clamps to zero", "-10", 0},
		{"above range clamps", "250", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseScore(tt.text); got != tt.want {
				t.Fatalf("ParseScore(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasSolved(t *testing.T) {
	p := &Progress{Solved: []string{"two-sum", "fizzbuzz"}}

	if !p.HasSolved("two-sum") {
		t.Fatal("expected two-sum to be solved")
	}
	if p.HasSolved("reverse-list") {
		t.Fatal("reverse-list must not count as solved")
	}
	if (&Progress{}).HasSolved("two-sum") {
		t.Fatal("fresh record must have nothing solved")
	}
}

func TestValidateUser(t *testing.T) {
	m := UserModel{}

	if _, err := m.Validate(User{Email: "  "}); err != ErrEmailMissing {
		t.Fatalf("expected ErrEmailMissing, got %v", err)
	}

	user, err := m.Validate(User{Email: " ann@example.com ", Name: " Ann "})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if user.Email != "ann@example.com" || user.Name != "Ann" {
		t.Fatalf("fields not trimmed: %+v", user)
	}
}
