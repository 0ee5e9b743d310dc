package stygen

import (
	"fmt"
	"sort"
	"strings"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (e.g., "**/*.tex")
	StyFile   string   // Path to the generated package (fontawesome5.sty)
	Verbose   bool
	Strict    bool    // Exit with code 1 if issues found
	Threshold float64 // Minimum adoption percentage (for --strict mode)

	// golangci-style configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	ShowStats          bool // Show statistics summary (auto-enabled with Verbose)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (stylint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	TotalCommands         int     // Commands defined by the generated package
	ActuallyUsed          int     // Commands referenced via \faName
	AvailableForMigration int     // Commands whose icon is referenced via raw \symbol or faicon@ lookup
	CompletelyUnused      int     // No usage, no raw references
	UsagePercentage       float64 // Percentage of actually used commands

	// Issues in golangci-lint format
	Issues           []Issue            // All issues found
	IssuesByCategory map[string][]Issue // Grouped by severity for stats

	// Detailed findings (used for verbose mode)
	UnusedCommands []UnusedCommand
	FilesScanned   int
	CommandRefs    int // Total \faName references found
	SymbolRefs     int // Total raw \symbol{"..."} references found
	LookupRefs     int // Total faicon@ lookups found
	ErrorCount     int // Count of error-severity issues
	TruncatedCount int // Issues removed due to limits

	// Summary
	Warnings    []string
	Suggestions []string
	QuickWins   []QuickWin // Most frequently hardcoded code points
}

// UnusedCommand represents a generated command with no references
type UnusedCommand struct {
	Name  string // "FaceSmile"
	Icon  string // "face-smile"
	Style string // "solid"
}

// QuickWin represents a high-impact refactoring opportunity
type QuickWin struct {
	Hex         string // "F118"
	Occurrences int    // 12
	Suggestion  string // `\faFaceSmile`
}

// Lint performs linting analysis on TeX sources against a generated package
func Lint(config LintConfig) (*LintResult, error) {
	// Step 1: Parse the generated package
	lookup, err := ParseStyFile(config.StyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated file: %w", err)
	}

	// Step 2: Scan files for icon references
	references, stats, err := ScanFiles(config.ScanPaths, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	// Step 3: Analyze usage
	result := analyzeUsage(lookup, references, config.StyFile)
	result.FilesScanned = stats.FilesScanned

	// Step 4: Generate suggestions
	result.Suggestions = generateSuggestions(result)

	// Step 5: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// analyzeUsage compares defined commands with found references
func analyzeUsage(lookup *StyLookup, references []CommandReference, styFile string) *LintResult {
	result := &LintResult{
		TotalCommands: len(lookup.Commands),
	}

	// Commands referenced by name (\faFaceSmile)
	actuallyUsed := make(map[string]bool)
	// Commands whose icon is reachable via a raw reference
	availableForMigration := make(map[string]bool)

	// Frequency of known hardcoded code points, for quick wins
	hardcodedCounts := make(map[string]int)
	suggestionMap := make(map[string]string)

	var issues []Issue

	for _, ref := range references {
		switch ref.Kind {
		case RefCommand:
			result.CommandRefs++
			if _, ok := lookup.Commands[ref.Command]; ok {
				actuallyUsed[ref.Command] = true
				continue
			}
			result.ErrorCount++
			issues = append(issues, Issue{
				FromLinter:  "stylint",
				Text:        fmt.Sprintf(IssueUndefinedCommand, ref.Command, styFile),
				Severity:    SeverityError,
				SourceLines: []string{ref.Location.Text},
				Pos: IssuePos{
					Filename: ref.Location.File,
					Line:     ref.Location.Line,
					Column:   ref.Location.Column,
				},
			})

		case RefSymbol:
			result.SymbolRefs++
			name, ok := lookup.Symbols[ref.Hex]
			if !ok {
				// Not one of our code points. Could be any glyph from any
				// font, so it is not an issue.
				continue
			}
			command := CommandName(name)
			if _, ok := lookup.Commands[command]; !ok {
				continue
			}
			availableForMigration[command] = true
			hardcodedCounts[ref.Hex]++
			suggestionMap[ref.Hex] = `\fa` + command
			issues = append(issues, Issue{
				FromLinter:  "stylint",
				Text:        fmt.Sprintf(IssueHardcodedSymbol, ref.Hex, command),
				Severity:    SeverityWarning,
				SourceLines: []string{ref.Location.Text},
				Replacement: &Replacement{NewText: `\fa` + command},
				Pos: IssuePos{
					Filename: ref.Location.File,
					Line:     ref.Location.Line,
					Column:   ref.Location.Column,
				},
			})

		case RefLookup:
			result.LookupRefs++
			if _, ok := lookup.Icons[ref.IconName]; !ok {
				result.ErrorCount++
				issues = append(issues, Issue{
					FromLinter:  "stylint",
					Text:        fmt.Sprintf(IssueUnknownLookup, ref.IconName),
					Severity:    SeverityError,
					SourceLines: []string{ref.Location.Text},
					Pos: IssuePos{
						Filename: ref.Location.File,
						Line:     ref.Location.Line,
						Column:   ref.Location.Column,
					},
				})
				continue
			}
			command := CommandName(ref.IconName)
			if _, ok := lookup.Commands[command]; !ok {
				continue
			}
			availableForMigration[command] = true
			issues = append(issues, Issue{
				FromLinter:  "stylint",
				Text:        fmt.Sprintf(IssueRawLookup, ref.IconName, command),
				Severity:    SeverityWarning,
				SourceLines: []string{ref.Location.Text},
				Replacement: &Replacement{NewText: `\fa` + command},
				Pos: IssuePos{
					Filename: ref.Location.File,
					Line:     ref.Location.Line,
					Column:   ref.Location.Column,
				},
			})
		}
	}

	// A command both used and raw-referenced counts as used
	for name := range actuallyUsed {
		delete(availableForMigration, name)
	}

	result.ActuallyUsed = len(actuallyUsed)
	result.AvailableForMigration = len(availableForMigration)
	result.CompletelyUnused = result.TotalCommands - result.ActuallyUsed - result.AvailableForMigration

	if result.TotalCommands > 0 {
		result.UsagePercentage = float64(result.ActuallyUsed) / float64(result.TotalCommands) * 100
	}

	// Combine actually used and migration candidates to find what's referenced
	allReferenced := make(map[string]bool)
	for k := range actuallyUsed {
		allReferenced[k] = true
	}
	for k := range availableForMigration {
		allReferenced[k] = true
	}

	result.UnusedCommands = findUnusedCommands(lookup, allReferenced)
	result.QuickWins = generateQuickWins(hardcodedCounts, suggestionMap)
	result.Issues = issues

	// Group issues by severity
	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
	}

	return result
}

// findUnusedCommands identifies commands with 0 references
func findUnusedCommands(lookup *StyLookup, referenced map[string]bool) []UnusedCommand {
	var unused []UnusedCommand

	for name, cmd := range lookup.Commands {
		if !referenced[name] {
			unused = append(unused, UnusedCommand{
				Name:  name,
				Icon:  cmd.Icon,
				Style: cmd.Style.String(),
			})
		}
	}

	// Sort by name
	sort.Slice(unused, func(i, j int) bool {
		return unused[i].Name < unused[j].Name
	})

	return unused
}

// generateQuickWins identifies the most frequently hardcoded code points
func generateQuickWins(freq map[string]int, suggestions map[string]string) []QuickWin {
	var wins []QuickWin

	for hex, count := range freq {
		if suggestion, ok := suggestions[hex]; ok {
			wins = append(wins, QuickWin{
				Hex:         hex,
				Occurrences: count,
				Suggestion:  suggestion,
			})
		}
	}

	// Sort by occurrences (descending), then by code point for stability
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Hex < wins[j].Hex
	})

	// Limit to top 10
	if len(wins) > 10 {
		wins = wins[:10]
	}

	return wins
}

// generateSuggestions creates actionable recommendations
func generateSuggestions(result *LintResult) []string {
	var suggestions []string

	if result.ErrorCount > 0 {
		suggestions = append(suggestions, "Fix undefined icon references before building the document")
	}

	if len(result.QuickWins) > 0 {
		suggestions = append(suggestions, `Replace raw \symbol code points with named commands (see Quick Wins below)`)
	}

	for _, issue := range result.IssuesByCategory[SeverityWarning] {
		if strings.HasPrefix(issue.Text, "raw icon lookup") {
			suggestions = append(suggestions, `Prefer \faName commands over \csname faicon@... lookups`)
			break
		}
	}

	return suggestions
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
