package convert

import "regexp"

type check struct {
	re      *regexp.Regexp
	message string
}

// Structural markers every plpgsql function is expected to carry.
// Absence of one contributes a warning.
var requiredChecks = []check{
	{regexp.MustCompile(`(?i)CREATE\s+(?:OR\s+REPLACE\s+)?FUNCTION`), "Missing CREATE FUNCTION"},
	{regexp.MustCompile(`(?i)RETURNS\s+(?:VOID|TABLE|SETOF)`), "Missing RETURNS clause"},
	{regexp.MustCompile(`(?i)LANGUAGE\s+plpgsql`), "Missing LANGUAGE plpgsql"},
	{regexp.MustCompile(`(?i)AS\s+\$\$`), "Missing AS $$ delimiter"},
	{regexp.MustCompile(`(?i)\$\$\s*;?\s*$`), "Missing closing $$"},
}

// T-SQL residue the model should have rewritten. Presence of one
// contributes a warning.
var residueChecks = []check{
	{regexp.MustCompile(`(?i)@\w+`), "Contains @ symbols (should be p_ or v_)"},
	{regexp.MustCompile(`(?i)\bGO\b`), "Contains GO statement"},
	{regexp.MustCompile(`(?i)CREATE\s+PROCEDURE`), "Contains CREATE PROCEDURE"},
	{regexp.MustCompile(`(?i)SET\s+NOCOUNT`), "Contains SET NOCOUNT"},
	{regexp.MustCompile(`(?i)GETDATE\(\)`), "Contains GETDATE() (should be CURRENT_TIMESTAMP)"},
}

// Validate scans the translated text against both checklists and returns
// the warnings in checklist order: required markers first, then residue.
// It is purely textual and therefore approximate — a $$ inside a string
// literal satisfies the closing-delimiter check even though it is not the
// real terminator. Hardening that would need real SQL parsing, which this
// tool deliberately avoids.
func Validate(candidate string) []string {
	var issues []string
	for _, c := range requiredChecks {
		if !c.re.MatchString(candidate) {
			issues = append(issues, c.message)
		}
	}
	for _, c := range residueChecks {
		if c.re.MatchString(candidate) {
			issues = append(issues, c.message)
		}
	}
	return issues
}
