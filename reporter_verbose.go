package stygen

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, colorize(cyanText, "Icon Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Total Commands:          %d\n", result.TotalCommands)
	fmt.Fprintf(r.w, "Actually Used:           %d (%.1f%%)\n", result.ActuallyUsed, result.UsagePercentage)
	fmt.Fprintf(r.w, "Migration Opportunities: %d\n", result.AvailableForMigration)
	fmt.Fprintf(r.w, "Completely Unused:       %d\n", result.CompletelyUnused)
	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Command References:      %d\n", result.CommandRefs)
	fmt.Fprintf(r.w, "Hardcoded Symbols:       %d\n", result.SymbolRefs)
	fmt.Fprintf(r.w, "Raw Lookups:             %d\n", result.LookupRefs)
}

// PrintAdoptionProgress shows visual progress bar
func (r *VerboseReporter) PrintAdoptionProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, colorize(cyanText, "Adoption Progress", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	printProgressBar(r.w, result.UsagePercentage)
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// PrintQuickWins shows migration opportunities
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, colorize(greenText, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	fmt.Fprintln(r.w, "\nMost frequently hardcoded code points (direct replace):")
	for i, win := range result.QuickWins {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. \\symbol{\"%s\"} - %d occurrences → Use %s\n",
			i+1, win.Hex, win.Occurrences, win.Suggestion)
	}
}

// PrintUnusedCommands shows commands the scanned sources never reference.
// A full icon set is mostly unused by any one document, so only a short
// sample is listed.
func (r *VerboseReporter) PrintUnusedCommands(result LintResult) {
	if len(result.UnusedCommands) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, colorize(yellowText, "Unused Commands", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	// Count per style
	byStyle := make(map[string]int)
	for _, unused := range result.UnusedCommands {
		byStyle[unused.Style]++
	}
	for _, style := range []string{"solid", "regular", "brands"} {
		if byStyle[style] > 0 {
			fmt.Fprintf(r.w, "%-8s %d\n", style+":", byStyle[style])
		}
	}

	limit := 10
	if len(result.UnusedCommands) < limit {
		limit = len(result.UnusedCommands)
	}
	fmt.Fprintln(r.w, "")
	for i := 0; i < limit; i++ {
		unused := result.UnusedCommands[i]
		fmt.Fprintf(r.w, "• \\fa%s (%s, %s)\n", unused.Name, unused.Icon, unused.Style)
	}
	if len(result.UnusedCommands) > limit {
		fmt.Fprintf(r.w, "... and %d more\n", len(result.UnusedCommands)-limit)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, colorize(yellowText, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// PrintSuggestions shows actionable recommendations
func (r *VerboseReporter) PrintSuggestions(result LintResult) {
	if len(result.Suggestions) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, colorize(greenText, "Recommendations", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	for i, suggestion := range result.Suggestions {
		fmt.Fprintf(r.w, "%d. %s\n", i+1, suggestion)
	}
}
