package convert

import "strings"

// Lines before the first of these prefixes are SQL Server export noise
// (USE [db], SET ANSI_NULLS, object comments) and are dropped wholesale.
var declPrefixes = []string{
	"create procedure",
	"create proc",
	"alter procedure",
	"alter proc",
}

// Normalize isolates the procedure body from a raw T-SQL export: everything
// before the declaration line is discarded, and inside the body GO batch
// separators and blank lines are dropped. Returns "" when no declaration
// line exists anywhere in the input.
func Normalize(raw string) string {
	var kept []string
	found := false
	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.ToLower(strings.TrimSpace(line))
		if !found {
			for _, p := range declPrefixes {
				if strings.HasPrefix(stripped, p) {
					found = true
					kept = append(kept, line)
					break
				}
			}
			continue
		}
		if stripped == "go" || stripped == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
