package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTagValues(t *testing.T) {
	tests := []struct {
		name string
		tag  interface{}
		want []string
	}{
		{"scalar", "go", []string{"go"}},
		{"string slice", []string{"go", "mongodb"}, []string{"go", "mongodb"}},
		{"bson array", primitive.A{"react", "css"}, []string{"react", "css"}},
		{"mixed bson array", primitive.A{"react", int32(7)}, []string{"react"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TagValues(tt.tag)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCountTags(t *testing.T) {
	tags := []interface{}{
		"go",
		primitive.A{"go", "mongodb"},
		"react",
		nil,
	}

	histogram := CountTags(tags)

	counts := make(map[string]int32)
	var total int32
	for _, bucket := range histogram {
		counts[bucket.Tag] = bucket.Count
		total += bucket.Count
	}

	if counts["go"] != 2 {
		t.Fatalf("go count = %d, want 2", counts["go"])
	}
	if counts["mongodb"] != 1 || counts["react"] != 1 {
		t.Fatalf("unexpected histogram: %v", histogram)
	}

	// total equals sum over questions of 1 (scalar) or len (list)
	if total != 4 {
		t.Fatalf("total count = %d, want 4", total)
	}
}

func TestValidateComment(t *testing.T) {
	m := QuestionModel{}

	if _, err := m.ValidateComment(Comment{Text: " ", Author: "ann"}); err != ErrCommentFieldsMissing {
		t.Fatalf("expected ErrCommentFieldsMissing, got %v", err)
	}
	if _, err := m.ValidateComment(Comment{Text: "hi", Author: ""}); err != ErrCommentFieldsMissing {
		t.Fatalf("expected ErrCommentFieldsMissing, got %v", err)
	}

	cleaned, err := m.ValidateComment(Comment{Text: "  hi  ", Author: " ann "})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if cleaned.Text != "hi" || cleaned.Author != "ann" {
		t.Fatalf("fields not trimmed: %+v", cleaned)
	}
}

func TestObjectIDHelper(t *testing.T) {
	if !ObjectID("not-a-hex-id").IsZero() {
		t.Fatal("invalid input should map to the nil ObjectID")
	}

	id := primitive.NewObjectID()
	if ObjectID(id.Hex()) != id {
		t.Fatal("round trip through hex failed")
	}
}
