// Command posterexport renders a poster JSON document to LaTeX and/or Typst
// sources on disk, including extracted image assets for the LaTeX bundle.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"posterlib/assets"
	"posterlib/document"
	"posterlib/export/latex"
	"posterlib/export/typst"
	"posterlib/observability/zaplog"
)

type options struct {
	posterPath string
	outDir     string
	emitLatex  bool
	emitTypst  bool
	verbose    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "posterexport: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "posterexport: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/posterexport [flags] <poster.json>\n")
		flag.PrintDefaults()
	}
	emitLatex := flag.Bool("latex", false, "Write a .tex bundle with extracted image assets")
	emitTypst := flag.Bool("typst", false, "Write a .typ source file")
	outDir := flag.String("out", "export_output", "Directory for generated files")
	verbose := flag.Bool("v", false, "Log export progress")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing poster path")
	}
	opts.posterPath = flag.Arg(0)
	opts.outDir = *outDir
	opts.emitLatex = *emitLatex
	opts.emitTypst = *emitTypst
	opts.verbose = *verbose
	if !opts.emitLatex && !opts.emitTypst {
		opts.emitLatex = true
		opts.emitTypst = true
	}
	return opts, nil
}

func run(opts options) error {
	data, err := os.ReadFile(opts.posterPath)
	if err != nil {
		return err
	}
	var poster document.Poster
	if err := json.Unmarshal(data, &poster); err != nil {
		return fmt.Errorf("parse %s: %w", opts.posterPath, err)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	ctx := context.Background()

	if opts.emitLatex {
		exporter := &latex.Exporter{Fetcher: &assets.HTTPFetcher{}}
		if opts.verbose {
			log, err := zaplog.NewDevelopment()
			if err != nil {
				return err
			}
			exporter.Log = log
		}
		bundle, err := exporter.Export(ctx, &poster)
		if err != nil {
			return err
		}
		texPath := filepath.Join(opts.outDir, latex.FileName(&poster))
		if err := os.WriteFile(texPath, []byte(bundle.Document), 0o644); err != nil {
			return err
		}
		fmt.Println(texPath)
		for _, asset := range bundle.ImageAssets {
			assetPath := filepath.Join(opts.outDir, asset.FileName)
			if err := os.WriteFile(assetPath, asset.Data, 0o644); err != nil {
				return err
			}
			fmt.Println(assetPath)
		}
	}

	if opts.emitTypst {
		typPath := filepath.Join(opts.outDir, typst.FileName(&poster))
		if err := os.WriteFile(typPath, []byte(typst.Export(&poster)), 0o644); err != nil {
			return err
		}
		fmt.Println(typPath)
	}

	return nil
}
