package stygen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when the corresponding Config fields are left zero.
const (
	DefaultOutfile     = "fontawesome5.sty"
	DefaultPackageName = "fontawesome5"
	DefaultTimeout     = 60 * time.Second
)

// Config holds generator configuration.
type Config struct {
	Infile  string        // local icons.yml; empty means download from URL
	URL     string        // metadata URL (default: MetadataURL)
	Outfile string        // output .sty path (default: fontawesome5.sty)
	Package string        // LaTeX package name (default: fontawesome5)
	Program string        // program name for the header (default: binary name)
	Clobber bool          // overwrite an existing output file
	Timeout time.Duration // download timeout (default: 60s)
	Verbose bool          // enable progress logging
}

// GenerateResult contains generation stats.
type GenerateResult struct {
	Icons   int // icons loaded from the metadata
	Solid   int // commands in the solid list
	Regular int // commands in the regular list
	Brands  int // commands in the brands list
	Outfile string
	Bytes   int // bytes written
}

// Generate is the main entry point: it loads the icon metadata, builds the
// statement lists, and writes the rendered package to config.Outfile.
func Generate(ctx context.Context, config Config) (*GenerateResult, error) {
	outfile := config.Outfile
	if outfile == "" {
		outfile = DefaultOutfile
	}

	// Refuse to overwrite an existing file unless clobbering was requested.
	if _, err := os.Stat(outfile); err == nil {
		if !config.Clobber {
			return nil, fmt.Errorf("file already exists: %s", outfile)
		}
		if err := os.Remove(outfile); err != nil {
			return nil, fmt.Errorf("removing %s: %w", outfile, err)
		}
		if config.Verbose {
			fmt.Printf("Removed existing file: %s\n", outfile)
		}
	}

	data, err := loadMetadata(ctx, config)
	if err != nil {
		return nil, err
	}

	if config.Verbose {
		fmt.Println("Loading icons metadata ...")
	}
	icons, err := ParseMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Number of icons: %d\n", len(icons))
	}

	artifacts, err := BuildArtifacts(icons)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}

	prov := Provenance{
		Program: config.Program,
		Date:    time.Now().Format("2006/01/02"),
		Package: config.Package,
	}
	if prov.Program == "" {
		prov.Program = filepath.Base(os.Args[0])
	}

	body, err := RenderPackage(artifacts, prov)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	if err := os.WriteFile(outfile, body, 0644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Mapping written to file: %s\n", outfile)
	}

	return &GenerateResult{
		Icons:   len(icons),
		Solid:   len(artifacts.Solid),
		Regular: len(artifacts.Regular),
		Brands:  len(artifacts.Brands),
		Outfile: outfile,
		Bytes:   len(body),
	}, nil
}

// loadMetadata reads the local infile when one is configured, otherwise
// downloads the metadata from the configured URL.
func loadMetadata(ctx context.Context, config Config) ([]byte, error) {
	if config.Infile != "" {
		data, err := os.ReadFile(config.Infile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", config.Infile, err)
		}
		return data, nil
	}

	url := config.URL
	if url == "" {
		url = MetadataURL
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if config.Verbose {
		fmt.Printf("Downloading icons.yml from: %s\n", url)
	}
	data, err := FetchMetadata(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	return data, nil
}
