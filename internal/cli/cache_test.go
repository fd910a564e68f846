package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/genetracks/genetracks/internal/config"
	"github.com/genetracks/genetracks/pkg/cache"
)

func TestCachePathCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, map[string]string{config.EnvCacheDir: dir}, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), dir)
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	out, err := runCLI(t, map[string]string{config.EnvCacheDir: dir}, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared 2 cached entries") {
		t.Errorf("output = %q", out)
	}
	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entry survived clear")
	}
}

func TestCacheClearNoneBackend(t *testing.T) {
	out, err := runCLI(t, map[string]string{config.EnvCacheBackend: cache.BackendNone}, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared 0") && !strings.Contains(out, "nothing to clear") {
		t.Errorf("output = %q", out)
	}
}
