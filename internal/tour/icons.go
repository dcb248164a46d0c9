// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package tour

// glyphs maps the fixed hotspot icon vocabulary to the symbol rendered
// on the overlay marker. The vocabulary follows the authored data; an
// unknown name falls back to DefaultGlyph rather than failing.
var glyphs = map[string]string{
	"door":     "🚪",
	"bed":      "🛏",
	"utensils": "🍴",
	"book":     "📖",
	"stairs":   "🪜",
	"droplets": "💧",
	"waves":    "🌊",
	"music":    "🎵",
	"flower":   "🌸",
	"sun":      "☀",
	"coffee":   "☕",
	"home":     "🏠",
	"wine":     "🍷",
}

// DefaultGlyph is rendered for icon names outside the vocabulary.
const DefaultGlyph = "📍"

// Glyph resolves a hotspot icon name to its rendering glyph.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return DefaultGlyph
}
