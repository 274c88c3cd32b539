// gog/loader.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// A Loader reads GOG files from disk, decompressing zstd archives
// transparently and caching parse results by path. Cached shapes are
// deep-copied on every hit so callers can mutate what they get back.
type Loader struct {
	parser *Parser

	mu    sync.Mutex
	cache *lru.Cache[string, []Shape]
}

// NewLoader wraps a parser with an LRU parse cache of the given capacity.
func NewLoader(parser *Parser, cacheSize int) (*Loader, error) {
	cache, err := lru.New[string, []Shape](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("gog: create loader cache: %w", err)
	}
	return &Loader{parser: parser, cache: cache}, nil
}

// Load parses the GOG file at path, serving repeated loads of the same
// path from cache.
func (l *Loader) Load(path string) ([]Shape, error) {
	l.mu.Lock()
	cached, ok := l.cache.Get(path)
	l.mu.Unlock()
	if ok {
		return cloneShapes(cached), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	shapes, err := l.parse(f)
	if err != nil {
		return nil, fmt.Errorf("gog: load %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache.Add(path, shapes)
	l.mu.Unlock()
	return cloneShapes(shapes), nil
}

// LoadAll loads several files concurrently. The result slice is indexed
// like paths; the first failure cancels outstanding loads.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([][]Shape, error) {
	results := make([][]Shape, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shapes, err := l.Load(path)
			if err != nil {
				return err
			}
			results[i] = shapes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Purge drops every cache entry.
func (l *Loader) Purge() {
	l.mu.Lock()
	l.cache.Purge()
	l.mu.Unlock()
}

// parse sniffs for the zstd magic and parses plain or compressed text.
func (l *Loader) parse(r io.Reader) ([]Shape, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return l.parser.Parse(dec), nil
	}
	return l.parser.Parse(br), nil
}

func cloneShapes(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = Clone(s)
	}
	return out
}
