package cli

import "fmt"

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// CommandError wraps a failure from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}

// InconsistentError signals that validation finished but found the
// dictionary inconsistent. Commands map it to a non-zero exit code
// distinct from operational failures.
type InconsistentError struct {
	Files []string
}

func (e *InconsistentError) Error() string {
	if len(e.Files) == 1 {
		return fmt.Sprintf("%s is inconsistent", e.Files[0])
	}
	return fmt.Sprintf("%d files are inconsistent", len(e.Files))
}
