package consts

import "os"

const (
	// ModeFile is the standard file mode for files written by the fmt command
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the configuration file looked up when none is given
	ConfigFile = "sqlast.yaml"

	// DefaultMaxDepth is the default limit on nested parentheses and prefix operators
	DefaultMaxDepth = 128

	// DefaultIndentSize is the default number of spaces per indentation level
	DefaultIndentSize = 4

	// DefaultConcurrency is the default number of files checked in parallel
	DefaultConcurrency = 8

	// SQLExt is the extension of files picked up when a directory is given
	SQLExt = ".sql"
)
