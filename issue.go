package stygen

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "stylint"
	Text        string       `json:"Text"`        // "undefined icon command \faFooBar not found in fontawesome5.sty"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "chapters/intro.tex"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the reference)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement provides automated fix suggestion (future --fix flag)
type Replacement struct {
	NewText      string // "\faFaceSmile"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// IssueType constants matching linter categories
const (
	IssueUndefinedCommand = `undefined icon command \fa%s not found in %s`
	IssueHardcodedSymbol  = `hardcoded icon symbol \symbol{"%s"} should use \fa%s`
	IssueRawLookup        = `raw icon lookup faicon@%s should use \fa%s`
	IssueUnknownLookup    = `raw icon lookup faicon@%s does not match any icon`
)
