package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across javawriter.
// Use these constants instead of raw strings to ensure consistency.
const (
	// CLI
	FieldCommand = "command"

	// Emitter state
	FieldPackage = "package"
	FieldScope   = "scope"
	FieldDepth   = "depth"
	FieldImport  = "import"
	FieldType    = "type"
	FieldKind    = "kind"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"

	// Files and paths
	FieldFile   = "file"
	FieldOutput = "output"
	FieldFormat = "format"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	w := javawriter.New(out, javawriter.WithLogger(logger.ComponentLogger("unit.render")))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	fileLogger := logger.ChildLogger(baseLogger, logger.FieldFile, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
