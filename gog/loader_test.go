// gog/loader_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/bdow/gogkit/math"
)

const loaderTestGog = `start
circle
centerlla 25.1 58.2 0
radius 500
rangeunits meters
end
`

func writeTestFile(t *testing.T, name, content string, compress bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	data := []byte(content)
	if compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			t.Fatalf("zstd writer: %v", err)
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoaderPlainFile(t *testing.T) {
	loader, err := NewLoader(NewParser(), 4)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	path := writeTestFile(t, "test.gog", loaderTestGog, false)
	shapes, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	if r, _ := shapes[0].(*Circle).Radius(); !math.AlmostEqual(r, 500, 1e-9) {
		t.Errorf("radius = %v", r)
	}
}

func TestLoaderZstdFile(t *testing.T) {
	loader, err := NewLoader(NewParser(), 4)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	path := writeTestFile(t, "test.gog.zst", loaderTestGog, true)
	shapes, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
}

func TestLoaderCacheReturnsCopies(t *testing.T) {
	loader, err := NewLoader(NewParser(), 4)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	path := writeTestFile(t, "test.gog", loaderTestGog, false)

	first, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first[0].(*Circle).SetRadius(9999)

	// delete the file; a cache hit must still work and must not see the
	// caller's mutation
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := loader.Load(path)
	if err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if r, _ := second[0].(*Circle).Radius(); !math.AlmostEqual(r, 500, 1e-9) {
		t.Errorf("cached radius = %v, caller mutation leaked into cache", r)
	}

	loader.Purge()
	if _, err := loader.Load(path); err == nil {
		t.Errorf("expected a miss after Purge on a deleted file")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader, err := NewLoader(NewParser(), 8)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	paths := []string{
		writeTestFile(t, "a.gog", loaderTestGog, false),
		writeTestFile(t, "b.gog", loaderTestGog, true),
	}
	results, err := loader.LoadAll(context.Background(), paths)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(results) != 2 || len(results[0]) != 1 || len(results[1]) != 1 {
		t.Fatalf("results = %v", results)
	}

	if _, err := loader.LoadAll(context.Background(), append(paths, filepath.Join(t.TempDir(), "missing.gog"))); err == nil {
		t.Errorf("missing file should fail the batch")
	}
}
