package textrules

import (
	"reflect"
	"testing"
)

// TestTokens_Default проверяет нормализацию с правилами по умолчанию
func TestTokens_Default(t *testing.T) {
	s := NewService(NewDefaultRepo())

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"spaces only", "   \n\t", nil},
		{"lower and punctuation", "Хочу билет ИЗ Москвы, в Сочи!", []string{"хочу", "билет", "из", "москвы", "в", "сочи"}},
		{"yo letter", "Ёлки в Орёл", []string{"елки", "в", "орел"}},
		{"hyphen splits", "Санкт-Петербург", []string{"санкт", "петербург"}},
		{"numeric date kept", "на 25.12.2024.", []string{"на", "25.12.2024"}},
		{"abbreviation", "из МСК в спб", []string{"из", "москва", "в", "санкт", "петербург"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Tokens(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

// TestTokens_CustomRules проверяет, что правила берутся из переданного repo
func TestTokens_CustomRules(t *testing.T) {
	s := NewService(NewStaticRepo(
		[]LetterRule{{From: 'a', To: 'b'}},
		[]WordRule{{From: "bbc", To: "x y"}, {From: " ", To: "ignored"}},
	))

	got := s.Tokens("AAC")
	want := []string{"x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %#v, want %#v", got, want)
	}
}

// TestProcess_Decomposed проверяет NFC: "й" из двух кодпоинтов совпадает с составным
func TestProcess_Decomposed(t *testing.T) {
	s := NewService(NewDefaultRepo())

	decomposed := "Хочу\u0438\u0306"
	if got := s.Process(decomposed); got != "хочу\u0439" {
		t.Errorf("Process(decomposed) = %q, want %q", got, "хочу\u0439")
	}

	if got := s.Process("Хочу  в   Сочи"); got != "хочу в сочи" {
		t.Errorf("Process = %q", got)
	}
}
