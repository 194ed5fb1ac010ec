// Package core provides the business logic for the campaign cleaning run.
//
// # Error Codes Reference
//
// This file defines user-facing error messages with codes for support
// reference. Codes are grouped by category:
//
// # Input Errors (FILE001-FILE099)
//
//	FILE001 - Input folder missing: The input folder could not be read
//	          Action: Create files/input and place the zip archives there
//	          Patterns: "list input directory"
//
//	FILE002 - Invalid CSV: An archive entry is not a valid CSV table
//	          Action: Ensure every entry is comma-separated with a header row
//	          Patterns: "invalid csv"
//
//	FILE003 - Invalid archive: A file ending in .zip is not a zip archive
//	          Action: Replace or remove the damaged archive
//	          Patterns: "not a valid zip file"
//
//	FILE004 - Tables do not line up: Entries have different column names
//	          Action: Make sure all entries share the same header
//	          Patterns: "concatenate tables"
//
//	FILE006 - No data: No archive in the input folder contained a table
//	          Action: Add at least one zip archive with CSV entries
//	          Patterns: "no valid data"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL005 - Column not found: An expected column is missing from the data
//	         Action: Verify the CSV headers match the campaign layout
//	         Patterns: "column not found"
//
// # Output Errors (OUT001-OUT099)
//
//	OUT001 - Permission denied: The output folder is not writable
//	         Action: Check permissions on files/output
//	         Patterns: "permission denied"
//
//	OUT002 - Disk full: There is no space left for the output files
//	         Action: Free disk space and run again
//	         Patterns: "no space left"
//
// # Fallback
//
//	ERR000 - Unexpected error
package core

import (
	"fmt"
	"strings"
)

// UserMessage is a user-facing explanation of an error.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns are checked in order; the first match wins.
var errorPatterns = []errorPattern{
	{
		pattern: "no valid data",
		msg: UserMessage{
			Message: "No archive in the input folder contained a table",
			Action:  "Add at least one zip archive with CSV entries to files/input",
			Code:    "FILE006",
		},
	},
	{
		pattern: "list input directory",
		msg: UserMessage{
			Message: "The input folder could not be read",
			Action:  "Create files/input and place the zip archives there",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "An archive entry is not a valid CSV table",
			Action:  "Ensure every entry is comma-separated with a header row",
			Code:    "FILE002",
		},
	},
	{
		pattern: "not a valid zip file",
		msg: UserMessage{
			Message: "A file ending in .zip is not a zip archive",
			Action:  "Replace or remove the damaged archive",
			Code:    "FILE003",
		},
	},
	{
		pattern: "concatenate tables",
		msg: UserMessage{
			Message: "Archive entries have different column names",
			Action:  "Make sure all entries share the same header",
			Code:    "FILE004",
		},
	},
	{
		pattern: "column not found",
		msg: UserMessage{
			Message: "An expected column is missing from the data",
			Action:  "Verify the CSV headers match the campaign layout",
			Code:    "VAL005",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "A file or folder could not be accessed",
			Action:  "Check permissions on files/input and files/output",
			Code:    "OUT001",
		},
	},
	{
		pattern: "no space left",
		msg: UserMessage{
			Message: "There is no space left for the output files",
			Action:  "Free disk space and run again",
			Code:    "OUT002",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for details and run again",
	Code:    "ERR000",
}

// MapError converts a technical error into a user-facing message.
// Matching is case-insensitive on the error text.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{Technical: err, User: MapError(err)}
}
