package delivery

import (
	"net/http"

	"github.com/Vovarama1992/avia_link_bot/internal/responder"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/goccy/go-json"
)

const maxParseBody = 64 << 10

type Responder interface {
	Respond(text string) responder.Reply
}

type ParseHandler struct {
	responder Responder
	log       *logger.ZapLogger
}

func NewParseHandler(r Responder, log *logger.ZapLogger) *ParseHandler {
	return &ParseHandler{responder: r, log: log}
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Origin      string `json:"origin_iata,omitempty"`
	Destination string `json:"destination_iata,omitempty"`
	Date        string `json:"depart_date,omitempty"`
	URL         string `json:"url"`
	Reply       string `json:"reply"`
	Button      string `json:"button"`
}

// POST /parse
// body: { "text": "из Москвы в Сочи на 25 декабря" }
// Тот же ответ, что получил бы пользователь в чате; пустой текст даёт пустую форму.
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxParseBody)).Decode(&req); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid parse body", Error: err, Service: "delivery"})
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	reply := h.responder.Respond(req.Text)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parseResponse{
		Origin:      string(reply.Query.Origin),
		Destination: string(reply.Query.Destination),
		Date:        reply.Query.Date,
		URL:         reply.ButtonURL,
		Reply:       reply.Text,
		Button:      reply.ButtonLabel,
	})
}

// GET /ping
func Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
