package convert

import (
	"context"
	"log"
	"strings"

	"tsql-bridge/api/internal/llm"
)

// Sentinels and banners embedded in the returned text. Convert never fails:
// the caller always gets displayable text, so these are part of the contract.
const (
	MsgEmptyInput   = "-- Error: Empty input"
	MsgNoProcedure  = "-- Error: No CREATE PROCEDURE found"
	MsgTranslateErr = "-- ❌ AI conversion failed. Check API key and connection."

	MsgNotConfigured = `-- ❌ AI Not Configured

To enable accurate conversion:
1. Get free API key: https://console.groq.com
2. Set: export GROQ_API_KEY='your-key'
3. Restart application

Without AI, accurate conversion is not guaranteed.`

	warningHeader = "-- ⚠️  Validation Warnings:\n"
	warningFooter = "-- Please review carefully.\n\n"
	successBanner = "-- ✅ Conversion Successful & Validated\n\n"
)

// Converter runs the normalize → translate → validate pipeline. A nil
// engine means no backend credential was present at startup; that state is
// fixed for the process lifetime.
type Converter struct {
	engine llm.Engine
}

func New(engine llm.Engine) *Converter {
	return &Converter{engine: engine}
}

func (c *Converter) Enabled() bool { return c.engine != nil }

// Convert turns a raw T-SQL stored-procedure export into annotated
// PostgreSQL text. Every failure mode collapses into a sentinel message;
// validation findings become a warning banner ahead of otherwise-usable
// output.
func (c *Converter) Convert(ctx context.Context, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgEmptyInput
	}

	body := Normalize(raw)
	if body == "" {
		return MsgNoProcedure
	}

	if c.engine == nil {
		return MsgNotConfigured
	}

	result, err := c.engine.Translate(ctx, body)
	if err != nil {
		// Operational detail stays in the log; the user gets the sentinel.
		log.Printf("translate (%s): %v", c.engine.Name(), err)
		return MsgTranslateErr
	}

	issues := Validate(result)
	if len(issues) == 0 {
		return successBanner + result
	}

	var b strings.Builder
	b.WriteString(warningHeader)
	for _, issue := range issues {
		b.WriteString("-- • ")
		b.WriteString(issue)
		b.WriteString("\n")
	}
	b.WriteString(warningFooter)
	b.WriteString(result)
	return b.String()
}

// WithEngine returns a copy of the converter bound to another engine.
// Used by surfaces that let the caller pick a backend per request.
func (c *Converter) WithEngine(engine llm.Engine) *Converter {
	return &Converter{engine: engine}
}

// CountWarnings reports how many "-- • " lines the warning banner of out
// carries; zero for sentinel and success outputs. This is the one
// consumer-side parser of the banner format, used for audit bookkeeping.
func CountWarnings(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "-- • ") {
			n++
		} else if line == "" {
			break
		}
	}
	return n
}
