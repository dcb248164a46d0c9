// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package tour

import "testing"

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"door", "🚪"},
		{"wine", "🍷"},
		{"spaceship", DefaultGlyph}, // outside the vocabulary
		{"", DefaultGlyph},
	}
	for _, tt := range tests {
		if got := Glyph(tt.name); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
