package responder

import (
	"github.com/Vovarama1992/avia_link_bot/internal/config"
	"go.uber.org/zap"
)

// Responder на каждое сообщение отдаёт ссылку: предзаполненную, если понял
// хотя бы один город, иначе на пустую форму. Тупиков нет.
type Responder struct {
	extractor Extractor
	links     LinkBuilder
	texts     config.Texts
	log       *zap.Logger
}

func NewResponder(extractor Extractor, links LinkBuilder, texts config.Texts, log *zap.Logger) *Responder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{
		extractor: extractor,
		links:     links,
		texts:     texts,
		log:       log,
	}
}

func (r *Responder) Respond(text string) Reply {
	q := r.extractor.Extract(text)

	reply := Reply{
		ButtonURL: r.links.Build(q),
		Query:     q,
	}

	if q.HasCity() {
		reply.Text = r.texts.Prefilled
		reply.ButtonLabel = r.texts.PrefilledButton
	} else {
		reply.Text = r.texts.Blank
		reply.ButtonLabel = r.texts.BlankButton
	}

	r.log.Info("[respond] extracted",
		zap.String("origin", string(q.Origin)),
		zap.String("destination", string(q.Destination)),
		zap.String("date", q.Date),
		zap.Bool("prefilled", q.HasCity()),
	)

	return reply
}

// Processing: уведомление "думаю", уходит до разбора запроса.
func (r *Responder) Processing() string {
	return r.texts.Processing
}
