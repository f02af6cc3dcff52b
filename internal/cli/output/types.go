package output

// CheckDiagnostic is one finding in JSON output.
type CheckDiagnostic struct {
	RuleID    string `json:"rule_id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty"`
}

// CheckFileResult groups findings per file in JSON output.
type CheckFileResult struct {
	Path        string            `json:"path"`
	Diagnostics []CheckDiagnostic `json:"diagnostics"`
}

// CheckSummary aggregates counts for a check run.
type CheckSummary struct {
	FilesScanned int `json:"files_scanned"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
	Hints        int `json:"hints"`
}

// CheckOutput is the JSON payload of the check command.
type CheckOutput struct {
	RunID   string            `json:"run_id"`
	Summary CheckSummary      `json:"summary"`
	Files   []CheckFileResult `json:"files,omitempty"`
}

// RuleInfo is one rule in the JSON payload of the rules command.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Severity    string   `json:"default_severity"`
	ConfigKeys  []string `json:"config_keys,omitempty"`
	Rationale   string   `json:"rationale,omitempty"`
	BadExample  string   `json:"bad_example,omitempty"`
	GoodExample string   `json:"good_example,omitempty"`
	Fix         string   `json:"fix,omitempty"`
}
