package stygen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains adoption and usage statistics
type JSONStats struct {
	TotalCommands          int     `json:"total_commands"`
	ActuallyUsed           int     `json:"actually_used"`
	MigrationOpportunities int     `json:"migration_opportunities"`
	CompletelyUnused       int     `json:"completely_unused"`
	UsagePercentage        float64 `json:"usage_percentage"`
	CommandReferences      int     `json:"command_references"`
	HardcodedSymbols       int     `json:"hardcoded_symbols"`
	RawLookups             int     `json:"raw_lookups"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`     // Optional source line
	Suggestion string `json:"suggestion,omitempty"` // Optional replacement text
}

// JSONQuickWin represents a high-impact refactoring opportunity
type JSONQuickWin struct {
	Symbol      string `json:"symbol"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	// Count errors and warnings
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	// Convert issues
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Source:     source,
			Suggestion: suggestion,
		}
	}

	// Convert quick wins
	quickWins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		quickWins[i] = JSONQuickWin{
			Symbol:      win.Hex,
			Occurrences: win.Occurrences,
			Suggestion:  win.Suggestion,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TotalCommands:          result.TotalCommands,
			ActuallyUsed:           result.ActuallyUsed,
			MigrationOpportunities: result.AvailableForMigration,
			CompletelyUnused:       result.CompletelyUnused,
			UsagePercentage:        result.UsagePercentage,
			CommandReferences:      result.CommandRefs,
			HardcodedSymbols:       result.SymbolRefs,
			RawLookups:             result.LookupRefs,
		},
		Issues:    jsonIssues,
		QuickWins: quickWins,
	}
}
