package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/stygen"
)

// resetKoanf clears global koanf state between tests.
func resetKoanf() {
	k = koanf.New(".")
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".stygen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	resetKoanf()

	path := writeConfigFile(t, `
package: myicons
verbose: true
generate:
  outfile: build/icons.sty
  clobber: true
  timeout: 90s
lint:
  strict: true
  threshold: 50.0
  paths:
    - "chapters/**/*.tex"
    - "main.tex"
`)

	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, "myicons", k.String("package"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "build/icons.sty", k.String("generate.outfile"))
	assert.True(t, k.Bool("generate.clobber"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 50.0, k.Float64("lint.threshold"))
	assert.Equal(t, []string{"chapters/**/*.tex", "main.tex"}, k.Strings("lint.paths"))
}

func TestLoadConfigFromPath_MissingFile(t *testing.T) {
	resetKoanf()

	// A missing config file is not an error; defaults apply.
	require.NoError(t, loadConfigFromPath(filepath.Join(t.TempDir(), ".stygen.yaml")))
	assert.False(t, k.Exists("generate.outfile"))
}

func TestEnvVarsOverrideConfigFile(t *testing.T) {
	resetKoanf()
	t.Setenv("STYGEN_GENERATE_OUTFILE", "from-env.sty")
	t.Setenv("STYGEN_LINT_STRICT", "true")

	path := writeConfigFile(t, `
generate:
  outfile: from-file.sty
lint:
  strict: false
`)

	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, "from-env.sty", k.String("generate.outfile"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildGenerateConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildGenerateConfig()

	assert.Equal(t, "", config.Infile)
	assert.Equal(t, stygen.MetadataURL, config.URL)
	assert.Equal(t, stygen.DefaultOutfile, config.Outfile)
	assert.Equal(t, stygen.DefaultPackageName, config.Package)
	assert.False(t, config.Clobber)
	assert.Equal(t, stygen.DefaultTimeout, config.Timeout)
	assert.False(t, config.Verbose)
}

func TestBuildGenerateConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	path := writeConfigFile(t, `
package: myicons
generate:
  infile: icons.yml
  outfile: build/icons.sty
  clobber: true
  timeout: 90s
`)
	require.NoError(t, loadConfigFromPath(path))

	config := buildGenerateConfig()

	assert.Equal(t, "icons.yml", config.Infile)
	assert.Equal(t, "build/icons.sty", config.Outfile)
	assert.Equal(t, "myicons", config.Package)
	assert.True(t, config.Clobber)
	assert.Equal(t, 90*time.Second, config.Timeout)
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig("fontawesome5.sty")

	assert.Equal(t, "fontawesome5.sty", config.StyFile)
	assert.Equal(t, []string{"**/*.tex"}, config.ScanPaths)
	assert.False(t, config.Strict)
	assert.Zero(t, config.Threshold)
	assert.Zero(t, config.MaxIssuesPerLinter)
	assert.Zero(t, config.MaxSameIssues)
	assert.True(t, config.ShowStats)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	path := writeConfigFile(t, `
lint:
  paths:
    - "chapters/**/*.tex"
  strict: true
  threshold: 75.0
  max-issues-per-linter: 5
  max-same-issues: 2
  print-lines: false
  print-linter-name: false
`)
	require.NoError(t, loadConfigFromPath(path))

	config := buildLintConfig("build/icons.sty")

	assert.Equal(t, "build/icons.sty", config.StyFile)
	assert.Equal(t, []string{"chapters/**/*.tex"}, config.ScanPaths)
	assert.True(t, config.Strict)
	assert.Equal(t, 75.0, config.Threshold)
	assert.Equal(t, 5, config.MaxIssuesPerLinter)
	assert.Equal(t, 2, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.False(t, config.PrintLinterName)
}

func TestGetDurationWithFallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, time.Minute, getDurationWithFallback("timeout", "generate.timeout", time.Minute))

	path := writeConfigFile(t, "generate:\n  timeout: 2m\n")
	require.NoError(t, loadConfigFromPath(path))
	assert.Equal(t, 2*time.Minute, getDurationWithFallback("timeout", "generate.timeout", time.Minute))
}

// chdirTemp switches to a temp dir for tests that touch the working
// directory and restores the original when the test finishes.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestInitCommand(t *testing.T) {
	chdirTemp(t)

	rootCmd.SetArgs([]string{"init"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".stygen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "package: fontawesome5")
	assert.Contains(t, string(data), "outfile: fontawesome5.sty")
	assert.Contains(t, string(data), `- "**/*.tex"`)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".stygen.yaml", []byte("package: custom\n"), 0644))

	rootCmd.SetArgs([]string{"init", "--force=false"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The existing file stays untouched.
	data, err := os.ReadFile(".stygen.yaml")
	require.NoError(t, err)
	assert.Equal(t, "package: custom\n", string(data))
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".stygen.yaml", []byte("package: custom\n"), 0644))

	rootCmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".stygen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "package: fontawesome5")
}

func TestVersionCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
}
