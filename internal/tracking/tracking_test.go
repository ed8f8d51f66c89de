package tracking

import (
	"strings"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	code := Generate()
	if !strings.HasPrefix(code, "DOC-") {
		t.Fatalf("code %q missing prefix", code)
	}
	if len(code) != len(Prefix)+7 {
		t.Fatalf("code %q length = %d, want %d", code, len(code), len(Prefix)+7)
	}
}

func TestGenerateAlphabet(t *testing.T) {
	for i := 0; i < 10000; i++ {
		code := Generate()
		for _, c := range code[len(Prefix):] {
			if !strings.ContainsRune(Alphabet, c) {
				t.Fatalf("code %q contains %q outside alphabet", code, c)
			}
		}
	}
}

func TestGenerateExcludesAmbiguousChars(t *testing.T) {
	for _, c := range "01IO" {
		if strings.ContainsRune(Alphabet, c) {
			t.Errorf("alphabet contains ambiguous character %q", c)
		}
	}
	if len(Alphabet) != 32 {
		t.Errorf("alphabet size = %d, want 32", len(Alphabet))
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"doc-abc2345", "DOC-ABC2345"},
		{"  DOC-ABC2345  ", "DOC-ABC2345"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid(Generate()) {
		t.Error("generated code should be valid")
	}
	for _, bad := range []string{"", "DOC-", "DOC-ABC234", "DOC-ABC23456", "XYZ-ABC2345", "DOC-ABC234O", "doc-abc2345"} {
		if Valid(bad) {
			t.Errorf("Valid(%q) = true, want false", bad)
		}
	}
}
