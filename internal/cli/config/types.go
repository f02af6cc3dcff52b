package config

// Defaults for configuration values.
const (
	DefaultOutput = "auto"
)

// DefaultExtensions lists the file extensions checked when none are
// configured.
var DefaultExtensions = []string{".cs"}

// Config holds the resolved spacelint configuration.
type Config struct {
	// Paths are the files or directories to check.
	Paths []string `koanf:"paths"`

	// Extensions are the file extensions included when walking directories.
	Extensions []string `koanf:"extensions"`

	// Jobs limits concurrent file checks; 0 means one per CPU.
	Jobs int `koanf:"jobs"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Output selects the output mode: auto, text, or json.
	Output string `koanf:"output"`

	// Lint holds rule configuration.
	Lint *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory the config file was found in (or the
	// working directory). Not read from the file itself.
	ProjectRoot string `koanf:"-"`
}

// LintConfig configures which rules run and how.
type LintConfig struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Severity maps rule IDs to severity override names
	// (error, warning, info, hint).
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options keyed by rule ID.
	Rules map[string]map[string]any `koanf:"rules"`
}
