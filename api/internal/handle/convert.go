package handle

import (
	"encoding/json"
	"net/http"
	"strings"

	"tsql-bridge/api/internal/llm"
)

type convertReq struct {
	SQLText string `json:"sql_text"`
	Engine  string `json:"engine,omitempty"`
}

type convertResp struct {
	Converted string `json:"converted"`
}

// Convert is the JSON surface: one conversion per request, engine
// selectable by name. Conversion failures never map to HTTP errors —
// the sentinel text is the payload.
func (h *Handle) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req convertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	conv := h.conv
	var engine llm.Engine
	if name := strings.TrimSpace(req.Engine); name != "" {
		var err error
		engine, err = h.engs.GetEngine(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		conv = conv.WithEngine(engine)
	} else {
		engine = h.engs.Default()
	}

	out := h.run(r.Context(), conv, engine, req.SQLText)
	writeJSON(w, http.StatusOK, convertResp{Converted: out})
}
