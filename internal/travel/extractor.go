package travel

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/Vovarama1992/avia_link_bot/internal/textrules"
)

// предлоги перед городом: "из Москвы": откуда, "в Сочи": куда
var (
	originCues      = map[string]bool{"из": true, "изо": true, "от": true, "с": true, "со": true}
	destinationCues = map[string]bool{"в": true, "во": true, "до": true, "на": true, "к": true, "ко": true}
)

type cue int

const (
	cueNone cue = iota
	cueOrigin
	cueDestination
)

// предлоги, после которых предложный падеж означает "где", а не "куда":
// "в Москву": куда, "в Москве": где
var locationCues = map[string]bool{"в": true, "во": true, "на": true}

type cityForm struct {
	code     IATACode
	tokens   []string
	locative bool
}

type mention struct {
	code IATACode
	cue  cue
}

// Extractor вытаскивает из текста города и дату. Без состояния между вызовами:
// индекс форм строится один раз в конструкторе и дальше только читается.
type Extractor struct {
	cities     []City
	normalizer *textrules.Service
	now        func() time.Time

	// первый токен формы -> формы, длинные раньше коротких
	index map[string][]cityForm
}

type Option func(*Extractor)

func WithCities(cities []City) Option {
	return func(e *Extractor) { e.cities = cities }
}

// WithClock задаёт "сегодня" для относительных дат и выбора года.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

func WithNormalizer(n *textrules.Service) Option {
	return func(e *Extractor) { e.normalizer = n }
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		cities: DefaultCities,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.normalizer == nil {
		e.normalizer = textrules.NewService(textrules.NewDefaultRepo())
	}

	e.index = make(map[string][]cityForm)
	for _, c := range e.cities {
		// формы проходят ту же нормализацию, что и текст пользователя
		locative := make(map[string]bool, len(c.Locative))
		for _, form := range c.Locative {
			locative[e.normalizer.Process(form)] = true
		}

		seen := make(map[string]bool, len(c.Forms)+len(c.Locative))
		for _, form := range append(slices.Clone(c.Forms), c.Locative...) {
			toks := e.normalizer.Tokens(form)
			key := strings.Join(toks, " ")
			if len(toks) == 0 || seen[key] {
				continue
			}
			seen[key] = true
			e.index[toks[0]] = append(e.index[toks[0]], cityForm{
				code:     c.Code,
				tokens:   toks,
				locative: locative[key],
			})
		}
	}
	for k := range e.index {
		forms := e.index[k]
		sort.SliceStable(forms, func(i, j int) bool {
			return len(forms[i].tokens) > len(forms[j].tokens)
		})
	}

	return e
}

// Extract никогда не падает: что не нашли, то остаётся пустым.
func (e *Extractor) Extract(text string) TravelQuery {
	tokens := e.normalizer.Tokens(text)
	if len(tokens) == 0 {
		return TravelQuery{}
	}

	var q TravelQuery
	q.Origin, q.Destination = resolveCities(e.findCities(tokens))
	if d, ok := findDate(tokens, e.now()); ok {
		q.Date = d
	}
	return q
}

func (e *Extractor) findCities(tokens []string) []mention {
	var out []mention
	for i := 0; i < len(tokens); {
		form, ok := e.matchAt(tokens, i)
		if !ok {
			i++
			continue
		}

		m := mention{code: form.code}
		if i > 0 {
			switch prev := tokens[i-1]; {
			case originCues[prev]:
				m.cue = cueOrigin
			case form.locative && locationCues[prev]:
				// "живу в Москве": город без направления
			case destinationCues[prev]:
				m.cue = cueDestination
			}
		}
		out = append(out, m)
		i += len(form.tokens)
	}
	return out
}

func (e *Extractor) matchAt(tokens []string, i int) (cityForm, bool) {
	for _, form := range e.index[tokens[i]] {
		if i+len(form.tokens) > len(tokens) {
			continue
		}
		if slices.Equal(tokens[i:i+len(form.tokens)], form.tokens) {
			return form, true
		}
	}
	return cityForm{}, false
}

// resolveCities раскладывает упоминания по слотам.
// Сначала упоминания с предлогом: первое "из X": откуда, первое "в Y": куда.
// Потом без предлога, по порядку в тексте: сначала откуда, потом куда.
// Город, уже занявший другой слот, повторно не берём; лишние упоминания игнорируем.
func resolveCities(mentions []mention) (origin, destination IATACode) {
	for _, m := range mentions {
		switch {
		case m.cue == cueOrigin && origin == "" && m.code != destination:
			origin = m.code
		case m.cue == cueDestination && destination == "" && m.code != origin:
			destination = m.code
		}
	}

	for _, m := range mentions {
		if m.cue != cueNone || m.code == origin || m.code == destination {
			continue
		}
		switch {
		case origin == "":
			origin = m.code
		case destination == "":
			destination = m.code
		}
	}

	return origin, destination
}
