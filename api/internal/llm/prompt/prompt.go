package prompt

import (
	"os"
	"path/filepath"
	"strings"
)

// System returns the system-role instruction: the migration-specialist
// persona. PROMPT_DIR/convert.system.txt overrides the built-in text.
func System() string {
	return load("convert.system.txt", systemPrompt)
}

// Rules returns the conversion rule catalogue.
// PROMPT_DIR/convert.rules.txt overrides the built-in text.
func Rules() string {
	return load("convert.rules.txt", rulesCatalogue)
}

func load(name, fallback string) string {
	dir := os.Getenv("PROMPT_DIR")
	if dir == "" {
		return fallback
	}
	if b, err := os.ReadFile(filepath.Join(dir, name)); err == nil && len(b) > 0 {
		return strings.TrimSpace(string(b))
	}
	return fallback
}

// BuildUser composes the user-role instruction: rule catalogue, the
// procedure body in a fenced block, and the output-format contract.
func BuildUser(sql string) string {
	var b strings.Builder
	b.WriteString("Convert this T-SQL stored procedure to PostgreSQL function following ALL these rules:\n\n")
	b.WriteString(Rules())
	b.WriteString("\n\nT-SQL INPUT:\n```sql\n")
	b.WriteString(sql)
	b.WriteString("\n```\n\nINSTRUCTIONS:\n")
	b.WriteString(`1. Apply ALL conversion rules above
2. Quote ALL table and column names with double quotes
3. Ensure proper RETURNS clause (VOID or TABLE)
4. Add RETURN QUERY for SELECT that returns data
5. Convert ALL @vars to p_ (params) or v_ (variables)
6. Use correct PostgreSQL syntax throughout
7. Return ONLY the PostgreSQL code, no explanations

PostgreSQL OUTPUT:`)
	return b.String()
}
