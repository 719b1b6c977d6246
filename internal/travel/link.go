package travel

import (
	"net/url"
	"strings"
)

// ключи query string веб-приложения поиска
const (
	ParamOrigin      = "origin_iata"
	ParamDestination = "destination_iata"
	ParamDate        = "depart_date"
)

type Param struct {
	Key   string
	Value string
}

// DeepLink: ссылка в веб-приложение с предзаполненной формой.
type DeepLink struct {
	BaseURL string
	Params  []Param
}

// NewDeepLink раскладывает запрос в параметры в фиксированном порядке:
// откуда, куда, дата. Пустые поля пропускаются.
func NewDeepLink(baseURL string, q TravelQuery) DeepLink {
	link := DeepLink{BaseURL: baseURL}
	if q.Origin != "" {
		link.Params = append(link.Params, Param{Key: ParamOrigin, Value: string(q.Origin)})
	}
	if q.Destination != "" {
		link.Params = append(link.Params, Param{Key: ParamDestination, Value: string(q.Destination)})
	}
	if q.Date != "" {
		link.Params = append(link.Params, Param{Key: ParamDate, Value: q.Date})
	}
	return link
}

// String всегда ставит "?", даже без параметров: base? открывает пустую форму.
func (l DeepLink) String() string {
	pairs := make([]string, 0, len(l.Params))
	for _, p := range l.Params {
		pairs = append(pairs, p.Key+"="+url.QueryEscape(p.Value))
	}
	return l.BaseURL + "?" + strings.Join(pairs, "&")
}

func BuildLink(baseURL string, q TravelQuery) string {
	return NewDeepLink(baseURL, q).String()
}

// LinkBuilder держит базовый URL из конфига.
type LinkBuilder struct {
	baseURL string
}

func NewLinkBuilder(baseURL string) *LinkBuilder {
	return &LinkBuilder{baseURL: baseURL}
}

func (b *LinkBuilder) Build(q TravelQuery) string {
	return BuildLink(b.baseURL, q)
}

func (b *LinkBuilder) BaseURL() string {
	return b.baseURL
}
