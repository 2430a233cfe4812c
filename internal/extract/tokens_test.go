package extract

import (
	"reflect"
	"testing"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"12", true},
		{"1.234", true},
		{"3,5", true},
		{" 7 ", true},
		{"12a", false},
		{"-3", false},
		{"", false},
		{"CVLI", false},
	}

	for _, tt := range tests {
		if got := isNumeric(tt.token); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		token string
		want  float64
	}{
		{"336", 336},
		{"1.234", 1234},
		{"3,5", 3.5},
		{"1.234,5", 1234.5},
		{"1,2,3", 1.2},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseNumber(tt.token); got != tt.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{28, 28},
		{2.5, 3},
		{0.49, 0},
		{9.999, 10},
	}

	for _, tt := range tests {
		if got := round(tt.in); got != tt.want {
			t.Errorf("round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	got := Lines("  BAIRRO CVLI \n\n\t\nCentro 5 3 12 8 336\r\n")
	want := []string{"BAIRRO CVLI", "Centro 5 3 12 8 336"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}

	if got := Lines(""); len(got) != 0 {
		t.Errorf("Lines(\"\") = %q, want empty", got)
	}
}
