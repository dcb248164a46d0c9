// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"testing"
)

// TestNilCache: a nil *PageCache is a valid pass-through, so handlers
// never branch on whether caching is configured.
func TestNilCache(t *testing.T) {
	var pc *PageCache

	if _, ok := pc.Get(context.Background(), "_home"); ok {
		t.Error("nil cache Get() reported a hit")
	}
	// Must not panic.
	pc.Set(context.Background(), "_home", []byte("<html>"))
}

func TestNewPageCacheDefaultTTL(t *testing.T) {
	pc := NewPageCache(nil, 0)
	if pc.ttl != DefaultPageTTL {
		t.Errorf("ttl = %v, want %v", pc.ttl, DefaultPageTTL)
	}
}

func TestPathKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "_home"},
		{"", "_home"},
		{"/projects/japandi", "/projects/japandi"},
		{"/projects/japandi/modern-minimalist-house", "/projects/japandi/modern-minimalist-house"},
	}
	for _, tt := range tests {
		if got := PathKey(tt.path); got != tt.want {
			t.Errorf("PathKey(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
