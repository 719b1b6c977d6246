package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ini/ini"
)

// TranscriptPlaceholder: место для распознанного текста в Texts.Transcript.
const TranscriptPlaceholder = "%s"

var ErrTranscriptPlaceholder = errors.New("transcript text must contain %s")

// Texts: все фразы, которые бот пишет пользователю.
// Можно переопределить секцией [texts] в INI-файле (TEXTS_FILE).
type Texts struct {
	Welcome         string `ini:"welcome"`
	WelcomeButton   string `ini:"welcome_button"`
	Processing      string `ini:"processing"`
	VoiceReceived   string `ini:"voice_received"`
	// %s заменяется распознанным текстом; без %s LoadTexts вернёт ошибку
	Transcript      string `ini:"transcript"`
	Prefilled       string `ini:"prefilled"`
	PrefilledButton string `ini:"prefilled_button"`
	Blank           string `ini:"blank"`
	BlankButton     string `ini:"blank_button"`
	Unsupported     string `ini:"unsupported"`
}

func DefaultTexts() Texts {
	return Texts{
		Welcome: "Привет! Я помогу тебе найти авиабилеты.\n\n" +
			"Просто напиши или скажи мне, куда и откуда ты хочешь полететь, " +
			"например: «хочу билет из Москвы в Сочи на 25 декабря», и я открою для тебя форму поиска.",
		WelcomeButton:   "✈️ Найти авиабилеты",
		Processing:      "Секунду, готовлю форму поиска... 🧐",
		VoiceReceived:   "Получил голосовое сообщение! Расшифровываю... 🤫",
		Transcript:      "Распознанный текст: «%s»",
		Prefilled:       "Отлично! Я предварительно заполнил форму поиска. Нажмите на кнопку, чтобы проверить.",
		PrefilledButton: "✅ Открыть предзаполненную форму",
		Blank:           "Я не смог распознать ваш запрос, но вы можете заполнить форму вручную. Нажмите на кнопку, чтобы открыть поиск.",
		BlankButton:     "✈️ Открыть форму поиска",
		Unsupported:     "📎 Отправь текст или голосовое сообщение с запросом.",
	}
}

// LoadTexts накладывает значения из файла на тексты по умолчанию.
// Пустой путь: только тексты по умолчанию.
func LoadTexts(path string) (Texts, error) {
	texts := DefaultTexts()
	if path == "" {
		return texts, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return texts, fmt.Errorf("load texts %s: %w", path, err)
	}

	// MapTo не трогает поля, которых нет в файле
	if err := f.Section("texts").MapTo(&texts); err != nil {
		return texts, fmt.Errorf("map texts: %w", err)
	}

	if !strings.Contains(texts.Transcript, TranscriptPlaceholder) {
		return texts, fmt.Errorf("%w: %q", ErrTranscriptPlaceholder, texts.Transcript)
	}

	return texts, nil
}
