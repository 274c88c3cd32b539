// cmd/gogtool/main.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// gogtool parses GOG overlay files (plain or zstd-compressed) and checks,
// dumps, converts, or round-trips them.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/goforj/godump"
	"golang.org/x/sync/errgroup"

	"github.com/bdow/gogkit/gog"
	"github.com/bdow/gogkit/log"
	"github.com/bdow/gogkit/units"
)

var (
	checkOnly  = flag.Bool("check", false, "parse the files and report problems, producing no other output")
	dumpShapes = flag.Bool("dump", false, "pretty-print the parsed shape structures")
	jsonOut    = flag.Bool("json", false, "write the parsed shapes as a JSON array to stdout")
	msgpackOut = flag.String("msgpack", "", "write the parsed shapes as msgpack records to the given file")
	roundTrip  = flag.Bool("roundtrip", false, "write canonical GOG text for the parsed shapes to stdout")
	convert    = flag.String("convert", "", "convert a value between units, e.g. \"100 feet meters\", and exit")
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log directory (default: user config dir)")
)

type fileResult struct {
	path      string
	shapes    []gog.Shape
	parseErrs []string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gogtool [flags] file.gog...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *convert != "" {
		if err := convertUnits(*convert); err != nil {
			fmt.Fprintf(os.Stderr, "gogtool: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	lg := log.New(*logLevel, *logDir)
	results, err := loadFiles(flag.Args(), lg)
	if err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "gogtool: %v\n", err)
		os.Exit(1)
	}

	problems := 0
	for _, r := range results {
		for _, msg := range r.parseErrs {
			problems++
			fmt.Fprintf(os.Stderr, "%s: %s\n", r.path, msg)
		}
	}

	if *checkOnly {
		for _, r := range results {
			fmt.Printf("%s: %d shapes, %d problems\n", r.path, len(r.shapes), len(r.parseErrs))
		}
	} else if err := writeOutput(results); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "gogtool: %v\n", err)
		os.Exit(1)
	}

	if problems > 0 {
		os.Exit(1)
	}
}

// loadFiles parses every file concurrently. Each file gets its own parser
// and error list so problem reports carry the right filename.
func loadFiles(paths []string, lg *log.Logger) ([]fileResult, error) {
	results := make([]fileResult, len(paths))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			parser := gog.NewParser()
			var errs []string
			parser.SetErrorHandler(func(line int, msg string) {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("line %d: %s", line, msg))
				mu.Unlock()
			})
			loader, err := gog.NewLoader(parser, 1)
			if err != nil {
				return err
			}
			shapes, err := loader.Load(path)
			if err != nil {
				return err
			}
			lg.Infof("parsed %s: %d shapes, %d problems", path, len(shapes), len(errs))
			results[i] = fileResult{path: path, shapes: shapes, parseErrs: errs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeOutput(results []fileResult) error {
	var all []gog.Shape
	for _, r := range results {
		all = append(all, r.shapes...)
	}

	if *dumpShapes {
		godump.Dump(all)
	}
	if *jsonOut {
		objs := make([]any, len(all))
		for i, s := range all {
			objs[i] = gog.JSONObject(s)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(objs); err != nil {
			return err
		}
	}
	if *msgpackOut != "" {
		data, err := gog.EncodeShapes(all)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*msgpackOut, data, 0o644); err != nil {
			return err
		}
	}
	if *roundTrip {
		for _, s := range all {
			fmt.Print(gog.Serialize(s))
		}
	}
	return nil
}

// convertUnits handles -convert "value from to", resolving unit names or
// abbreviations against the default catalog.
func convertUnits(spec string) error {
	fields := strings.Fields(spec)
	if len(fields) != 3 {
		return fmt.Errorf("-convert wants \"value from to\", got %q", spec)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("bad value %q: %v", fields[0], err)
	}

	registry := units.NewRegistry()
	registry.RegisterDefaults()
	lookup := func(name string) (units.Units, error) {
		if u, ok := registry.ByName(name); ok {
			return u, nil
		}
		if u, ok := registry.ByAbbreviation(name); ok {
			return u, nil
		}
		return units.Invalid, fmt.Errorf("unknown unit %q", name)
	}
	from, err := lookup(fields[1])
	if err != nil {
		return err
	}
	to, err := lookup(fields[2])
	if err != nil {
		return err
	}
	result, err := from.Convert(to, v)
	if err != nil {
		return err
	}
	fmt.Printf("%g %s = %g %s\n", v, from.Abbreviation(), result, to.Abbreviation())
	return nil
}
