package store

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", RGBA(255, 128, 0, 255), false},
		{"FF8000", RGBA(255, 128, 0, 255), false},
		{"#0a141e80", RGBA(10, 20, 30, 128), false},
		{"  #000000 ", RGBA(0, 0, 0, 255), false},
		{"", Color{}, true},
		{"#", Color{}, true},
		{"#fff", Color{}, true},
		{"#ff80000", Color{}, true},
		{"#gg0000", Color{}, true},
		{"#ff00ff00ff", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadColor) {
					t.Errorf("Expected ErrBadColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseHex_MatchesHex(t *testing.T) {
	for _, c := range Presets {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("Expected %v, got %v", c, got)
		}
	}
}
