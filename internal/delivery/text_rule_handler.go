package delivery

import (
	"net/http"

	tr "github.com/Vovarama1992/avia_link_bot/internal/textrules"
	"github.com/goccy/go-json"
)

// TextRuleHandler показывает, какие правила нормализации сейчас действуют.
type TextRuleHandler struct {
	repo tr.Repo
}

func NewTextRuleHandler(repo tr.Repo) *TextRuleHandler {
	return &TextRuleHandler{repo: repo}
}

type ruleJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GET /text-rules/letters
func (h *TextRuleHandler) ListLetterRules(w http.ResponseWriter, _ *http.Request) {
	rules := h.repo.ListLetterRules()
	out := make([]ruleJSON, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleJSON{From: string(r.From), To: string(r.To)})
	}
	writeJSON(w, out)
}

// GET /text-rules/words
func (h *TextRuleHandler) ListWordRules(w http.ResponseWriter, _ *http.Request) {
	rules := h.repo.ListWordRules()
	out := make([]ruleJSON, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleJSON{From: r.From, To: r.To})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
