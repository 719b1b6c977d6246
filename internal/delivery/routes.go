package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hParse *ParseHandler,
	hRules *TextRuleHandler,
) {
	r.With(httputil.RecoverMiddleware).Get("/ping", Ping)

	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		// --- разбор запроса ---
		pr.Post("/parse", hParse.Parse)

		// --- правила нормализации ---
		pr.Get("/text-rules/letters", hRules.ListLetterRules)
		pr.Get("/text-rules/words", hRules.ListWordRules)
	})
}
