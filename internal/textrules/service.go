package textrules

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// числовая дата (25.12, 25.12.2024) остаётся одним токеном
var tokenRe = regexp.MustCompile(`\d{1,2}\.\d{1,2}(?:\.\d{2,4})?|[\p{L}\p{N}]+`)

type Service struct {
	letters map[rune]rune
	words   map[string][]string
}

// NewService снимает правила с repo один раз; дальше Service только читает их
// и может использоваться из нескольких горутин.
func NewService(repo Repo) *Service {
	s := &Service{
		letters: make(map[rune]rune),
		words:   make(map[string][]string),
	}
	for _, rule := range repo.ListLetterRules() {
		s.letters[rule.From] = rule.To
	}
	for _, rule := range repo.ListWordRules() {
		from := strings.TrimSpace(rule.From)
		if from == "" {
			continue
		}
		s.words[from] = strings.Fields(rule.To)
	}
	return s
}

// Tokens приводит текст к нижнему регистру, применяет правила букв и слов
// и режет его на слова.
func (s *Service) Tokens(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// 1) unicode + регистр
	text = norm.NFC.String(text)
	text = cases.Lower(language.Russian).String(text)

	// 2) letters
	if len(s.letters) > 0 {
		text = strings.Map(func(r rune) rune {
			if to, ok := s.letters[r]; ok {
				return to
			}
			return r
		}, text)
	}

	// 3) words
	raw := tokenRe.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if repl, ok := s.words[tok]; ok {
			out = append(out, repl...)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (s *Service) Process(text string) string {
	return strings.Join(s.Tokens(text), " ")
}
