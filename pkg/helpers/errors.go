// Package helpers holds small utilities shared by the toolbind packages and CLI.
package helpers

import (
	"fmt"
)

// WrapError prefixes err with message. A nil err stays nil.
//
// Example:
//
//	return helpers.WrapError(err, "failed to read tool document")
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf is WrapError with a formatted prefix. A nil err stays nil.
//
// Example:
//
//	return helpers.WrapErrorf(err, "%s", path)
//	return helpers.WrapErrorf(err, "tool %d", i)
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	args = append(args, err)
	return fmt.Errorf(format+": %w", args...)
}
