package travel

// City: строка справочника: код и все формы названия, которые принимаем.
// Формы пишутся в нижнем регистре, без "ё"; составные названия: через пробел.
type City struct {
	Code     IATACode
	Name     string
	Forms    []string
	Locative []string // предложный падеж после в/во/на: "москве", "петербурге"
}

// ===== склонения =====

// город мужского рода на согласный: екатеринбург, екатеринбурга, ...
func masc(stem string) []string {
	return decline(stem, "", "а", "у", "ом", "е")
}

// женский род на -а: москва, москвы, ...
func femA(stem string) []string {
	return decline(stem, "а", "ы", "е", "у", "ой", "ою")
}

// женский род на -ь: казань, казани, казанью
func femSoft(stem string) []string {
	return decline(stem, "ь", "и", "ью")
}

func decline(stem string, endings ...string) []string {
	out := make([]string, 0, len(endings))
	for _, e := range endings {
		out = append(out, stem+e)
	}
	return out
}

func join(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// DefaultCities: направления, которые бот понимает из коробки.
var DefaultCities = []City{
	{Code: "MOW", Name: "Москва", Forms: femA("москв"), Locative: []string{"москве"}},
	{Code: "LED", Name: "Санкт-Петербург", Forms: join(
		masc("санкт петербург"),
		masc("петербург"),
		masc("питер"),
		masc("ленинград"),
	), Locative: []string{"санкт петербурге", "петербурге", "питере", "ленинграде"}},
	{Code: "AER", Name: "Сочи", Forms: join([]string{"сочи"}, masc("адлер")), Locative: []string{"адлере"}},
	{Code: "KZN", Name: "Казань", Forms: femSoft("казан"), Locative: []string{"казани"}},
	{Code: "SVX", Name: "Екатеринбург", Forms: masc("екатеринбург"), Locative: []string{"екатеринбурге"}},
	{Code: "OVB", Name: "Новосибирск", Forms: masc("новосибирск"), Locative: []string{"новосибирске"}},
	{Code: "KGD", Name: "Калининград", Forms: masc("калининград"), Locative: []string{"калининграде"}},
	{Code: "KRR", Name: "Краснодар", Forms: masc("краснодар"), Locative: []string{"краснодаре"}},
	{Code: "MRV", Name: "Минеральные Воды", Forms: []string{
		"минеральные воды",
		"минеральных вод",
		"минеральным водам",
		"минеральными водами",
		"минеральных водах",
		"минвод",
		"минводах",
	}, Locative: []string{"минеральных водах", "минводах"}},
	{Code: "VVO", Name: "Владивосток", Forms: masc("владивосток"), Locative: []string{"владивостоке"}},
	{Code: "KUF", Name: "Самара", Forms: femA("самар"), Locative: []string{"самаре"}},
	{Code: "GOJ", Name: "Нижний Новгород", Forms: []string{
		"нижний новгород",
		"нижнего новгорода",
		"нижнему новгороду",
		"нижним новгородом",
		"нижнем новгороде",
	}, Locative: []string{"нижнем новгороде"}},
	{Code: "UFA", Name: "Уфа", Forms: femA("уф"), Locative: []string{"уфе"}},
	{Code: "ROV", Name: "Ростов-на-Дону", Forms: join(
		decline("ростов", " на дону", "а на дону", "у на дону", "ом на дону", "е на дону"),
		masc("ростов"),
	), Locative: []string{"ростове на дону", "ростове"}},
	{Code: "KJA", Name: "Красноярск", Forms: masc("красноярск"), Locative: []string{"красноярске"}},
	{Code: "IKT", Name: "Иркутск", Forms: masc("иркутск"), Locative: []string{"иркутске"}},
	{Code: "MMK", Name: "Мурманск", Forms: masc("мурманск"), Locative: []string{"мурманске"}},
	{Code: "MCX", Name: "Махачкала", Forms: femA("махачкал"), Locative: []string{"махачкале"}},
	{Code: "VOG", Name: "Волгоград", Forms: masc("волгоград"), Locative: []string{"волгограде"}},
	{Code: "PEE", Name: "Пермь", Forms: femSoft("перм"), Locative: []string{"перми"}},
	{Code: "CEK", Name: "Челябинск", Forms: masc("челябинск"), Locative: []string{"челябинске"}},
	{Code: "OMS", Name: "Омск", Forms: masc("омск"), Locative: []string{"омске"}},
	{Code: "TJM", Name: "Тюмень", Forms: femSoft("тюмен"), Locative: []string{"тюмени"}},
	{Code: "AAQ", Name: "Анапа", Forms: femA("анап"), Locative: []string{"анапе"}},
	{Code: "IST", Name: "Стамбул", Forms: masc("стамбул"), Locative: []string{"стамбуле"}},
	{Code: "AYT", Name: "Анталья", Forms: join(
		decline("антал", "ья", "ьи", "ье", "ью", "ьей"),
		decline("антал", "ия", "ии", "ию", "ией"),
	), Locative: []string{"анталье", "анталии"}},
	{Code: "DXB", Name: "Дубай", Forms: decline("дуба", "й", "я", "ю", "ем", "е", "и"), Locative: []string{"дубае"}},
	{Code: "EVN", Name: "Ереван", Forms: masc("ереван"), Locative: []string{"ереване"}},
	{Code: "TBS", Name: "Тбилиси", Forms: []string{"тбилиси"}},
	{Code: "MSQ", Name: "Минск", Forms: masc("минск"), Locative: []string{"минске"}},
	{Code: "GYD", Name: "Баку", Forms: []string{"баку"}},
	{Code: "ALA", Name: "Алматы", Forms: []string{"алматы", "алма ата", "алма аты", "алма ате", "алма ату"}, Locative: []string{"алма ате"}},
}
