// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "emphasis",
			source: "Material **jujur** tanpa polesan.",
			want:   "<strong>jujur</strong>",
		},
		{
			name:   "heading with auto id",
			source: "## Konsep Ruang",
			want:   `<h2 id="konsep-ruang">`,
		},
		{
			name:   "gfm strikethrough",
			source: "harga ~~naik~~ tetap",
			want:   "<del>naik</del>",
		},
		{
			// goldmark's default renderer drops raw HTML blocks and
			// leaves a marker comment in their place.
			name:   "raw html is dropped",
			source: `<script>alert("x")</script>`,
			want:   "<!-- raw HTML omitted -->",
		},
		{
			name:   "list",
			source: "- satu\n- dua",
			want:   "<li>satu</li>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML() failed: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.source, got, tt.want)
			}
		})
	}
}

// TestToHTMLNoRawPassThrough: authored content never carries HTML, so
// anything that looks like HTML must not reach the rendered page.
func TestToHTMLNoRawPassThrough(t *testing.T) {
	got, err := ToHTML(`<script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("ToHTML() failed: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("ToHTML passed raw HTML through: %q", got)
	}
}

func TestToHTMLEmpty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML(\"\") failed: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("ToHTML(\"\") = %q, want empty output", got)
	}
}
