package stygen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genTestSty generates a package from testMetadata and returns its path.
func genTestSty(t *testing.T, dir string) string {
	t.Helper()
	outfile := filepath.Join(dir, "fontawesome5.sty")
	_, err := Generate(context.Background(), Config{
		Infile:  writeTestMetadata(t, dir),
		Outfile: outfile,
	})
	require.NoError(t, err)
	return outfile
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	styFile := genTestSty(t, dir)

	texContent := `\faGithub
\faNoSuchIcon
\symbol{"F118"}
\symbol{"ABCD"}
\csname faicon@hourglass\endcsname
\csname faicon@missing\endcsname
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.tex"), []byte(texContent), 0644))

	result, err := Lint(LintConfig{
		ScanPaths: []string{filepath.Join(dir, "*.tex")},
		StyFile:   styFile,
	})
	require.NoError(t, err)

	// The package defines FaceSmile, Github and Hourglass.
	assert.Equal(t, 3, result.TotalCommands)
	assert.Equal(t, 1, result.ActuallyUsed)
	assert.Equal(t, 2, result.AvailableForMigration)
	assert.Equal(t, 0, result.CompletelyUnused)
	assert.InDelta(t, 33.33, result.UsagePercentage, 0.01)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.CommandRefs)
	assert.Equal(t, 2, result.SymbolRefs)
	assert.Equal(t, 2, result.LookupRefs)

	// \faNoSuchIcon and faicon@missing are errors; the known hardcoded
	// symbol and the known raw lookup are warnings. The unknown code
	// point ABCD could be any font's glyph and is ignored.
	assert.Equal(t, 2, result.ErrorCount)
	assert.Len(t, result.Issues, 4)
	assert.Len(t, result.IssuesByCategory[SeverityError], 2)
	assert.Len(t, result.IssuesByCategory[SeverityWarning], 2)

	assert.Empty(t, result.UnusedCommands)

	var foundSymbolFix bool
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning && issue.Replacement != nil && issue.Replacement.NewText == `\faFaceSmile` {
			foundSymbolFix = true
		}
	}
	assert.True(t, foundSymbolFix, "hardcoded symbol warning should carry the command replacement")
}

func TestLint_IssuePositions(t *testing.T) {
	dir := t.TempDir()
	styFile := genTestSty(t, dir)

	texPath := filepath.Join(dir, "doc.tex")
	require.NoError(t, os.WriteFile(texPath, []byte("text\nsee \\faNope here\n"), 0644))

	result, err := Lint(LintConfig{
		ScanPaths: []string{filepath.Join(dir, "*.tex")},
		StyFile:   styFile,
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, "stylint", issue.FromLinter)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, `\faNope`)
	assert.Contains(t, issue.Text, styFile)
	assert.Equal(t, texPath, issue.Pos.Filename)
	assert.Equal(t, 2, issue.Pos.Line)
	assert.Equal(t, 5, issue.Pos.Column)
	require.Len(t, issue.SourceLines, 1)
	assert.Equal(t, `see \faNope here`, issue.SourceLines[0])
}

func TestLint_UsedCommandIsNotMigration(t *testing.T) {
	dir := t.TempDir()
	styFile := genTestSty(t, dir)

	// FaceSmile is both used by name and referenced by raw code point:
	// it counts as used, not as a migration candidate.
	texContent := `\faFaceSmile
\symbol{"F118"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.tex"), []byte(texContent), 0644))

	result, err := Lint(LintConfig{
		ScanPaths: []string{filepath.Join(dir, "*.tex")},
		StyFile:   styFile,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ActuallyUsed)
	assert.Equal(t, 0, result.AvailableForMigration)
	assert.Equal(t, 2, result.CompletelyUnused)
	// The hardcoded symbol still gets its warning.
	assert.Len(t, result.IssuesByCategory[SeverityWarning], 1)
}

func TestLint_UnusedCommands(t *testing.T) {
	dir := t.TempDir()
	styFile := genTestSty(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.tex"), []byte("\\faGithub\n"), 0644))

	result, err := Lint(LintConfig{
		ScanPaths: []string{filepath.Join(dir, "*.tex")},
		StyFile:   styFile,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ActuallyUsed)
	assert.Equal(t, 2, result.CompletelyUnused)

	require.Len(t, result.UnusedCommands, 2)
	assert.Equal(t, "FaceSmile", result.UnusedCommands[0].Name)
	assert.Equal(t, "face-smile", result.UnusedCommands[0].Icon)
	assert.Equal(t, "solid", result.UnusedCommands[0].Style)
	assert.Equal(t, "Hourglass", result.UnusedCommands[1].Name)
}

func TestLint_QuickWins(t *testing.T) {
	dir := t.TempDir()
	styFile := genTestSty(t, dir)

	texContent := `\symbol{"F118"} \symbol{"F118"} \symbol{"F118"}
\symbol{"F09B"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.tex"), []byte(texContent), 0644))

	result, err := Lint(LintConfig{
		ScanPaths: []string{filepath.Join(dir, "*.tex")},
		StyFile:   styFile,
	})
	require.NoError(t, err)

	require.Len(t, result.QuickWins, 2)
	assert.Equal(t, "F118", result.QuickWins[0].Hex)
	assert.Equal(t, 3, result.QuickWins[0].Occurrences)
	assert.Equal(t, `\faFaceSmile`, result.QuickWins[0].Suggestion)
	assert.Equal(t, "F09B", result.QuickWins[1].Hex)
	assert.Equal(t, 1, result.QuickWins[1].Occurrences)

	assert.Contains(t, result.Suggestions, `Replace raw \symbol code points with named commands (see Quick Wins below)`)
}

func TestLint_MissingStyFile(t *testing.T) {
	result, err := Lint(LintConfig{
		ScanPaths: []string{"**/*.tex"},
		StyFile:   filepath.Join(t.TempDir(), "absent.sty"),
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to parse generated file")
}

func TestLint_MaxIssuesPerLinter(t *testing.T) {
	dir := t.TempDir()
	styFile := genTestSty(t, dir)

	texContent := `\faNopeOne
\faNopeTwo
\faNopeThree
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.tex"), []byte(texContent), 0644))

	result, err := Lint(LintConfig{
		ScanPaths:          []string{filepath.Join(dir, "*.tex")},
		StyFile:            styFile,
		MaxIssuesPerLinter: 2,
	})
	require.NoError(t, err)

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.TruncatedCount)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "b"}, {Text: "c"},
	}

	t.Run("max issues per linter", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 2})
		assert.Len(t, limited, 2)
		assert.Equal(t, 3, truncated)
	})

	t.Run("max same issues", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxSameIssues: 1})
		require.Len(t, limited, 3)
		assert.Equal(t, "a", limited[0].Text)
		assert.Equal(t, "b", limited[1].Text)
		assert.Equal(t, "c", limited[2].Text)
		assert.Equal(t, 2, truncated)
	})

	t.Run("no limits", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{})
		assert.Len(t, limited, 5)
		assert.Zero(t, truncated)
	})
}

func TestGenerateQuickWins_TopTen(t *testing.T) {
	freq := make(map[string]int)
	suggestions := make(map[string]string)
	for i := 0; i < 15; i++ {
		hex := fmt.Sprintf("F%03X", i)
		freq[hex] = i + 1
		suggestions[hex] = `\faIcon` + hex
	}

	wins := generateQuickWins(freq, suggestions)
	require.Len(t, wins, 10)
	assert.Equal(t, 15, wins[0].Occurrences)
	assert.Equal(t, 6, wins[9].Occurrences)
}

func TestGenerateSuggestions(t *testing.T) {
	t.Run("errors first", func(t *testing.T) {
		result := &LintResult{ErrorCount: 2}
		got := generateSuggestions(result)
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "Fix undefined icon references")
	})

	t.Run("raw lookups", func(t *testing.T) {
		result := &LintResult{
			IssuesByCategory: map[string][]Issue{
				SeverityWarning: {{Text: `raw icon lookup faicon@github should use \faGithub`}},
			},
		}
		got := generateSuggestions(result)
		require.Len(t, got, 1)
		assert.Contains(t, got[0], `\faName commands`)
	})

	t.Run("clean run", func(t *testing.T) {
		assert.Empty(t, generateSuggestions(&LintResult{}))
	})
}
