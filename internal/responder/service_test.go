package responder

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Vovarama1992/avia_link_bot/internal/config"
	"github.com/Vovarama1992/avia_link_bot/internal/travel"
)

const testBase = "https://example.com/app"

func newTestResponder() *Responder {
	extractor := travel.NewExtractor(travel.WithClock(func() time.Time {
		return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	}))
	return NewResponder(extractor, travel.NewLinkBuilder(testBase), config.DefaultTexts(), nil)
}

// TestRespond_Prefilled проверяет сценарий с полностью распознанным запросом
func TestRespond_Prefilled(t *testing.T) {
	r := newTestResponder()
	texts := config.DefaultTexts()

	reply := r.Respond("хочу билет из Москвы в Сочи на 25 декабря")

	if reply.Text != texts.Prefilled {
		t.Errorf("Text = %q, want prefilled wording", reply.Text)
	}
	if reply.ButtonLabel != texts.PrefilledButton {
		t.Errorf("ButtonLabel = %q", reply.ButtonLabel)
	}
	want := testBase + "?origin_iata=MOW&destination_iata=AER&depart_date=2026-12-25"
	if reply.ButtonURL != want {
		t.Errorf("ButtonURL = %q, want %q", reply.ButtonURL, want)
	}
}

// TestRespond_OriginOnly проверяет, что одного города достаточно для предзаполнения
func TestRespond_OriginOnly(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond("из Казани")

	if reply.Text != config.DefaultTexts().Prefilled {
		t.Errorf("Text = %q", reply.Text)
	}
	if reply.ButtonURL != testBase+"?origin_iata=KZN" {
		t.Errorf("ButtonURL = %q", reply.ButtonURL)
	}
}

// TestRespond_Blank проверяет, что без городов всё равно есть кнопка на пустую форму
func TestRespond_Blank(t *testing.T) {
	r := newTestResponder()
	texts := config.DefaultTexts()

	for _, text := range []string{"", "привет", "   ", "завтра"} {
		reply := r.Respond(text)

		if reply.Text == "" || reply.Text != texts.Blank {
			t.Errorf("Respond(%q).Text = %q, want blank wording", text, reply.Text)
		}
		if reply.ButtonLabel != texts.BlankButton {
			t.Errorf("Respond(%q).ButtonLabel = %q", text, reply.ButtonLabel)
		}
		if !strings.HasPrefix(reply.ButtonURL, testBase+"?") {
			t.Errorf("Respond(%q).ButtonURL = %q", text, reply.ButtonURL)
		}
	}

	if got := r.Respond("").ButtonURL; got != testBase+"?" {
		t.Errorf("empty text ButtonURL = %q, want bare base", got)
	}
	// дата без города: форма пустая по тексту, но дату передаём
	if got := r.Respond("завтра").ButtonURL; got != testBase+"?depart_date=2026-10-20" {
		t.Errorf("date-only ButtonURL = %q", got)
	}
}

type stubExtractor struct {
	q travel.TravelQuery
}

func (s stubExtractor) Extract(string) travel.TravelQuery { return s.q }

// TestRespond_UsesInjectedParts проверяет, что Responder не знает о справочниках
func TestRespond_UsesInjectedParts(t *testing.T) {
	texts := config.DefaultTexts()
	texts.Prefilled = "ok"
	r := NewResponder(
		stubExtractor{q: travel.TravelQuery{Destination: "XXX"}},
		travel.NewLinkBuilder("https://other.example"),
		texts,
		nil,
	)

	reply := r.Respond("anything")
	if reply.Text != "ok" {
		t.Errorf("Text = %q", reply.Text)
	}
	if reply.ButtonURL != "https://other.example?destination_iata=XXX" {
		t.Errorf("ButtonURL = %q", reply.ButtonURL)
	}
	if reply.Query.Destination != "XXX" {
		t.Errorf("Query = %+v", reply.Query)
	}
	if r.Processing() != texts.Processing {
		t.Errorf("Processing() = %q", r.Processing())
	}
}

// TestRespond_Concurrent проверяет отсутствие общего состояния между сообщениями
func TestRespond_Concurrent(t *testing.T) {
	r := newTestResponder()
	want := r.Respond("из Москвы в Сочи")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := r.Respond("из Москвы в Сочи"); got != want {
				t.Errorf("concurrent Respond = %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
}
