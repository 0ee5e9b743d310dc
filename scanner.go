package stygen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// RefKind discriminates the ways a TeX source can reference an icon.
type RefKind int

const (
	// RefCommand is a generated command usage: \faFaceSmile
	RefCommand RefKind = iota
	// RefSymbol is a raw code point usage: \symbol{"F118}
	RefSymbol
	// RefLookup is a raw mapping lookup: \csname faicon@face-smile\endcsname
	RefLookup
)

// CommandReference is one icon reference found in a TeX source.
type CommandReference struct {
	Kind        RefKind
	Command     string       // command name for RefCommand: "FaceSmile"
	Hex         string       // uppercased code point for RefSymbol: "F118"
	IconName    string       // icon name for RefLookup: "face-smile"
	Location    FileLocation // where it was found
	LineContent string       // the full line for context
}

// FileLocation tracks where a reference was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of the reference)
	Text   string // trimmed line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // total files found by glob patterns
	FilesScanned    int // files actually scanned (after filtering)
	FilesSkipped    int // files skipped due to filtering
}

var (
	// Reference patterns. Generated command names start with an uppercase
	// letter or a digit ("500px"), which keeps commands like \fax or
	// \faicon out of the match.
	commandRefRe = regexp.MustCompile(`\\fa([A-Z0-9][a-zA-Z0-9]*)`)
	symbolRefRe  = regexp.MustCompile(`\\symbol\{"([0-9A-Fa-f]+)"?\}`)
	lookupRefRe  = regexp.MustCompile(`faicon@([a-z0-9-]+)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Two-layer filtering:
//  1. Style files are never scanned: the generated package defines the
//     commands the linter is counting usages of.
//  2. Gitignored files are skipped (only for relative paths; absolute paths
//     are outside the project and not subject to its gitignore).
func shouldSkipFile(path string) bool {
	if filepath.Ext(path) == ".sty" {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for icon references.
func ScanFiles(scanPatterns []string, verbose bool) ([]CommandReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	if verbose && stats.FilesSkipped > 0 {
		fmt.Printf("Scanned %d files (skipped %d generated/ignored files)\n",
			stats.FilesScanned, stats.FilesSkipped)
	}

	var allRefs []CommandReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			// Unreadable files are skipped, not fatal.
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to deduplicated file paths,
// applying the skip filters and tracking statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single TeX source for icon references.
func scanFile(filePath string) ([]CommandReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []CommandReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		lineRefs := extractRefsFromLine(line, lineNum, filePath)
		refs = append(refs, lineRefs...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractRefsFromLine extracts all icon references from a line. Text after
// an unescaped % is TeX comment and is not scanned.
func extractRefsFromLine(line string, lineNum int, file string) []CommandReference {
	code := stripTeXComment(line)
	if strings.TrimSpace(code) == "" {
		return nil
	}

	trimmed := strings.TrimSpace(line)
	location := func(col int) FileLocation {
		return FileLocation{File: file, Line: lineNum, Column: col, Text: trimmed}
	}

	var refs []CommandReference

	for _, m := range commandRefRe.FindAllStringSubmatchIndex(code, -1) {
		refs = append(refs, CommandReference{
			Kind:        RefCommand,
			Command:     code[m[2]:m[3]],
			Location:    location(m[0] + 1),
			LineContent: trimmed,
		})
	}

	for _, m := range symbolRefRe.FindAllStringSubmatchIndex(code, -1) {
		refs = append(refs, CommandReference{
			Kind:        RefSymbol,
			Hex:         strings.ToUpper(code[m[2]:m[3]]),
			Location:    location(m[0] + 1),
			LineContent: trimmed,
		})
	}

	for _, m := range lookupRefRe.FindAllStringSubmatchIndex(code, -1) {
		refs = append(refs, CommandReference{
			Kind:        RefLookup,
			IconName:    code[m[2]:m[3]],
			Location:    location(m[0] + 1),
			LineContent: trimmed,
		})
	}

	return refs
}

// stripTeXComment drops everything from the first unescaped % to the end of
// the line. Escape handling is byte-wise: \% stays, which covers the
// overwhelmingly common case.
func stripTeXComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '%' {
			continue
		}
		if i > 0 && line[i-1] == '\\' {
			continue
		}
		return line[:i]
	}
	return line
}
