package responder

import "github.com/Vovarama1992/avia_link_bot/internal/travel"

type Extractor interface {
	Extract(text string) travel.TravelQuery
}

type LinkBuilder interface {
	Build(q travel.TravelQuery) string
}

// Reply: один исходящий ответ: текст и кнопка с ссылкой на форму поиска.
type Reply struct {
	Text        string
	ButtonLabel string
	ButtonURL   string
	Query       travel.TravelQuery
}
