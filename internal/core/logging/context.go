package logging

import "context"

type contextKey string

const (
	commandKey   contextKey = "command"
	storePathKey contextKey = "store"
)

// WithCommand adds the running command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// WithStorePath adds the task file path to the context.
func WithStorePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, storePathKey, path)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetStorePath retrieves the task file path from the context.
// Returns empty string if not present.
func GetStorePath(ctx context.Context) string {
	if path, ok := ctx.Value(storePathKey).(string); ok {
		return path
	}
	return ""
}
