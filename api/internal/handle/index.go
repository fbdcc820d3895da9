package handle

import (
	"html/template"
	"io"
	"log"
	"net/http"
)

// 1 MiB is plenty for any stored procedure export.
const maxUpload = 1 << 20

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	AIEnabled bool
	SQLText   string
	Converted string
}

// Index serves the web form: paste or upload T-SQL, get annotated
// PostgreSQL back in the second pane. One POST triggers exactly one
// conversion; the result is displayed as-is, banners and sentinels
// included.
func (h *Handle) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{AIEnabled: h.conv.Enabled()}

	if r.Method == http.MethodPost {
		data.SQLText = h.readInput(r)
		if data.SQLText != "" {
			data.Converted = h.run(r.Context(), h.conv, h.engs.Default(), data.SQLText)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("render index: %v", err)
	}
}

// readInput prefers an uploaded file over the textarea, like the form does.
func (h *Handle) readInput(r *http.Request) string {
	if err := r.ParseMultipartForm(maxUpload); err == nil {
		if f, _, err := r.FormFile("file"); err == nil {
			defer f.Close()
			b, err := io.ReadAll(io.LimitReader(f, maxUpload))
			if err == nil && len(b) > 0 {
				return string(b)
			}
		}
	} else if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.FormValue("sql_text")
}

const indexHTML = `<!doctype html>
<html><head><title>T-SQL to PostgreSQL Converter</title>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:linear-gradient(135deg,#667eea,#764ba2);min-height:100vh;padding:20px}
.container{max-width:1600px;margin:0 auto;background:#fff;padding:40px;border-radius:16px;box-shadow:0 25px 70px rgba(0,0,0,0.35)}
.header{text-align:center;margin-bottom:30px}
h1{color:#1e293b;font-size:2.4rem;font-weight:900;margin-bottom:8px}
.subtitle{color:#64748b;font-size:1.1rem;margin-bottom:20px}
.badge{display:inline-block;padding:10px 24px;border-radius:30px;font-size:0.95rem;font-weight:700;color:#fff;background:{{if .AIEnabled}}linear-gradient(135deg,#10b981,#059669){{else}}linear-gradient(135deg,#94a3b8,#64748b){{end}}}
.setup{background:#fef3c7;border-left:4px solid #f59e0b;padding:20px;margin:20px 0;border-radius:8px}
.upload{text-align:center;padding:30px;border:3px dashed #667eea;border-radius:12px;margin:25px 0}
.editor{display:grid;grid-template-columns:1fr 1fr;gap:25px;margin:25px 0}
.panel{background:#f8fafc;padding:20px;border-radius:12px;border:2px solid #e2e8f0}
.panel h3{color:#1e293b;margin-bottom:15px;font-size:1.1rem;font-weight:700}
textarea{width:100%;height:550px;padding:18px;font-family:'Fira Code','Consolas',monospace;font-size:13.5px;border:2px solid #cbd5e1;border-radius:10px;line-height:1.7}
textarea[readonly]{background:#f1f5f9}
.buttons{display:flex;justify-content:center;gap:15px;margin-top:30px}
button{padding:16px 45px;border:none;border-radius:12px;font-size:1.05rem;font-weight:700;cursor:pointer;background:linear-gradient(135deg,#667eea,#764ba2);color:#fff}
@media (max-width:1200px){.editor{grid-template-columns:1fr}}
</style></head><body>
<div class="container">
<div class="header">
<h1>🚀 T-SQL to PostgreSQL Converter</h1>
<p class="subtitle">AI-Powered Migration with 25+ Conversion Rules</p>
<span class="badge">{{if .AIEnabled}}✅ AI ACTIVE{{else}}⚠️ CONFIGURE AI FOR ACCURACY{{end}}</span>
</div>
{{if not .AIEnabled}}<div class="setup">
<strong>⚡ Setup AI (2 minutes):</strong><br>
1. Visit <a href="https://console.groq.com" target="_blank">console.groq.com</a> → Create free account<br>
2. Generate API key from dashboard<br>
3. Set: <code>export GROQ_API_KEY="your-key"</code><br>
4. Restart app
</div>{{end}}
<div class="upload">
<form method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".sql">
<button type="submit">📁 Convert File</button>
</form>
</div>
<form method="post">
<div class="editor">
<div class="panel">
<h3>📝 T-SQL Input</h3>
<textarea name="sql_text" placeholder="Paste your SQL Server T-SQL code here...">{{.SQLText}}</textarea>
</div>
<div class="panel">
<h3>✅ PostgreSQL Output</h3>
<textarea readonly placeholder="Converted PostgreSQL code will appear here...">{{.Converted}}</textarea>
</div>
</div>
<div class="buttons">
<button type="submit">🔄 Convert with AI</button>
</div>
</form>
</div>
</body></html>`
