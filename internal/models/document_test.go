package models

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Draft", StatusDraft},
		{"In Review", StatusInReview},
		{"Approved", StatusApproved},
		{"Archived", StatusArchived},
		{"", StatusDraft},
		{"draft", StatusDraft},
		{"Deleted", StatusDraft},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, st := range Statuses {
		if !st.Valid() {
			t.Errorf("%q should be valid", st)
		}
	}
	if Status("Unknown").Valid() {
		t.Error("unknown status should not be valid")
	}
	if Status("").Valid() {
		t.Error("empty status should not be valid")
	}
}

func TestDocumentNormalize(t *testing.T) {
	d := Document{Status: "bogus", Category: ""}
	d.Normalize()
	if d.Status != StatusDraft {
		t.Errorf("status = %q, want Draft", d.Status)
	}
	if d.Category != "Uncategorized" {
		t.Errorf("category = %q, want Uncategorized", d.Category)
	}

	d = Document{Status: StatusApproved, Category: "Finance"}
	d.Normalize()
	if d.Status != StatusApproved || d.Category != "Finance" {
		t.Errorf("valid fields should be untouched, got %q/%q", d.Status, d.Category)
	}
}
