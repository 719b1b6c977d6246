package textrules

// ===== DEFAULTS =====

var defaultLetterRules = []LetterRule{
	{From: 'ё', To: 'е'},
}

// сокращения, которые пишут в чатах и иногда выдаёт распознавание
var defaultWordRules = []WordRule{
	{From: "мск", To: "москва"},
	{From: "спб", To: "санкт петербург"},
	{From: "екб", To: "екатеринбург"},
	{From: "нск", To: "новосибирск"},
	{From: "крд", To: "краснодар"},
	{From: "минводы", To: "минеральные воды"},
}

type staticRepo struct {
	letters []LetterRule
	words   []WordRule
}

// NewStaticRepo: правила в памяти процесса, задаются при старте.
func NewStaticRepo(letters []LetterRule, words []WordRule) Repo {
	return &staticRepo{letters: letters, words: words}
}

func NewDefaultRepo() Repo {
	return NewStaticRepo(defaultLetterRules, defaultWordRules)
}

func (r *staticRepo) ListLetterRules() []LetterRule {
	return r.letters
}

func (r *staticRepo) ListWordRules() []WordRule {
	return r.words
}
