package textrules

type LetterRule struct {
	From rune
	To   rune
}

type WordRule struct {
	From string
	To   string // может быть несколько слов через пробел
}

type Repo interface {
	ListLetterRules() []LetterRule
	ListWordRules() []WordRule
}
