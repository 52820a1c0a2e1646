package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). If zerr's API changes, errors fall back to
// standard error handling.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, matching
// zerr's With-attached key/value pairs.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an unfolded error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr errors contribute their
// own message and metadata and traversal continues; a standard error
// contributes its full Error() text and stops the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the chain hierarchically:
//
//	Error: <main message>
//	       <metadata>
//
//	  Caused by:
//	    → <cause>
//	      <metadata>
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = appendMetadata(lines, entry.Metadata, "       ")
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = appendMetadata(lines, entry.Metadata, "      ")
	}

	return strings.Join(lines, "\n")
}

// appendMetadata renders metadata as indented key: value lines, keys
// sorted alphabetically for stable output.
func appendMetadata(lines []string, metadata map[string]any, indent string) []string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, metadata[k]))
	}
	return lines
}
