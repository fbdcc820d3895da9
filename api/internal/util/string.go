package util

import "strings"

// StripCodeFences removes a leading/trailing markdown code fence from s.
// Models often wrap SQL output in ```sql ... ``` despite being told not to;
// the language tag (sql, postgresql) is matched case-insensitively.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		rest := s[3:]
		for _, tag := range []string{"postgresql", "sql"} {
			if len(rest) >= len(tag) && strings.EqualFold(rest[:len(tag)], tag) {
				rest = rest[len(tag):]
				break
			}
		}
		s = strings.TrimPrefix(strings.TrimLeft(rest, " \t"), "\n")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ChunkText splits s into pieces of at most limit bytes, preferring to cut
// at line boundaries. Telegram rejects messages over 4096 characters.
func ChunkText(s string, limit int) []string {
	if limit <= 0 || len(s) <= limit {
		return []string{s}
	}
	var out []string
	for len(s) > limit {
		cut := strings.LastIndexByte(s[:limit], '\n')
		if cut <= 0 {
			cut = limit
		}
		out = append(out, s[:cut])
		s = strings.TrimPrefix(s[cut:], "\n")
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
