package travel

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// месяцы в родительном ("25 декабря") и именительном ("25 декабрь") падеже
var months = map[string]time.Month{
	"января": time.January, "январь": time.January,
	"февраля": time.February, "февраль": time.February,
	"марта": time.March, "март": time.March,
	"апреля": time.April, "апрель": time.April,
	"мая": time.May, "май": time.May,
	"июня": time.June, "июнь": time.June,
	"июля": time.July, "июль": time.July,
	"августа": time.August, "август": time.August,
	"сентября": time.September, "сентябрь": time.September,
	"октября": time.October, "октябрь": time.October,
	"ноября": time.November, "ноябрь": time.November,
	"декабря": time.December, "декабрь": time.December,
}

// относительные даты, сдвиг в днях от сегодня
var relativeDays = map[string]int{
	"сегодня":     0,
	"завтра":      1,
	"послезавтра": 2,
}

// порядковые числительные, как их отдаёт распознавание речи:
// "на пятое декабря", "двадцать пятого декабря"
var ordinals = map[string]int{
	"первое": 1, "первого": 1,
	"второе": 2, "второго": 2,
	"третье": 3, "третьего": 3,
	"четвертое": 4, "четвертого": 4,
	"пятое": 5, "пятого": 5,
	"шестое": 6, "шестого": 6,
	"седьмое": 7, "седьмого": 7,
	"восьмое": 8, "восьмого": 8,
	"девятое": 9, "девятого": 9,
	"десятое": 10, "десятого": 10,
	"одиннадцатое": 11, "одиннадцатого": 11,
	"двенадцатое": 12, "двенадцатого": 12,
	"тринадцатое": 13, "тринадцатого": 13,
	"четырнадцатое": 14, "четырнадцатого": 14,
	"пятнадцатое": 15, "пятнадцатого": 15,
	"шестнадцатое": 16, "шестнадцатого": 16,
	"семнадцатое": 17, "семнадцатого": 17,
	"восемнадцатое": 18, "восемнадцатого": 18,
	"девятнадцатое": 19, "девятнадцатого": 19,
	"двадцатое": 20, "двадцатого": 20,
	"тридцатое": 30, "тридцатого": 30,
}

var tens = map[string]int{
	"двадцать": 20,
	"тридцать": 30,
}

// "25-го декабря", "25-е декабря": дефис режет окончание в отдельный токен
var daySuffixes = map[string]bool{
	"го": true, "ого": true, "е": true, "ое": true,
}

// после числа "1.5 недели", "2.5 часа": это не дата
var units = map[string]bool{
	"час": true, "часа": true, "часов": true,
	"минута": true, "минуты": true, "минут": true,
	"день": true, "дня": true, "дней": true,
	"неделя": true, "недели": true, "недель": true,
	"месяц": true, "месяца": true, "месяцев": true,
	"год": true, "года": true, "лет": true,
	"км": true, "кг": true, "тыс": true, "раза": true, "раз": true,
}

// findDate ищет первое выражение даты в токенах и возвращает его в виде YYYY-MM-DD.
// Слова ("завтра", "25 декабря") идут раньше цифр через точку.
func findDate(tokens []string, now time.Time) (string, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := range tokens {
		if shift, ok := relativeDays[tokens[i]]; ok {
			return today.AddDate(0, 0, shift).Format(dateLayout), true
		}
		if d, ok := parseWordDate(tokens, i, today); ok {
			return d, true
		}
	}

	for i := range tokens {
		if !numericDateContext(tokens, i) {
			continue
		}
		if d, ok := parseNumericDate(tokens[i], today); ok {
			return d, true
		}
	}
	return "", false
}

// "в 10.05": время, "1.5 недели": длительность. С годом сомнений нет.
func numericDateContext(tokens []string, i int) bool {
	if strings.Count(tokens[i], ".") > 1 {
		return true
	}
	if i > 0 && (tokens[i-1] == "в" || tokens[i-1] == "во") {
		return false
	}
	if i+1 < len(tokens) && units[tokens[i+1]] {
		return false
	}
	return true
}

// 25.12 / 25.12.24 / 25.12.2024; месяц всегда двумя цифрами
func parseNumericDate(tok string, today time.Time) (string, bool) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 || len(parts) > 3 || len(parts[1]) != 2 {
		return "", false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", false
	}

	year := 0
	if len(parts) == 3 {
		year, err = strconv.Atoi(parts[2])
		if err != nil {
			return "", false
		}
		switch len(parts[2]) {
		case 2:
			year += 2000
		case 4:
		default:
			return "", false
		}
	}

	return resolveDate(year, time.Month(month), day, today)
}

// [день] [месяц] [год]?
func parseWordDate(tokens []string, i int, today time.Time) (string, bool) {
	day, n, ok := parseDay(tokens, i)
	if !ok || i+n >= len(tokens) {
		return "", false
	}

	month, ok := months[tokens[i+n]]
	if !ok {
		return "", false
	}

	year := 0
	if j := i + n + 1; j < len(tokens) && len(tokens[j]) == 4 {
		if y, err := strconv.Atoi(tokens[j]); err == nil {
			year = y
		}
	}

	return resolveDate(year, month, day, today)
}

// parseDay возвращает число и сколько токенов оно заняло.
func parseDay(tokens []string, i int) (int, int, bool) {
	tok := tokens[i]

	if len(tok) <= 2 {
		if d, err := strconv.Atoi(tok); err == nil {
			if i+1 < len(tokens) && daySuffixes[tokens[i+1]] {
				return d, 2, true
			}
			return d, 1, true
		}
	}

	if t, ok := tens[tok]; ok && i+1 < len(tokens) {
		if o, ok := ordinals[tokens[i+1]]; ok && o < 10 {
			return t + o, 2, true
		}
	}

	if o, ok := ordinals[tok]; ok {
		return o, 1, true
	}

	return 0, 0, false
}

// resolveDate достраивает год и отбрасывает несуществующие даты.
// year == 0: год не назван: берём ближайшую такую дату начиная с сегодня.
func resolveDate(year int, month time.Month, day int, today time.Time) (string, bool) {
	if year != 0 {
		d, ok := calendarDate(year, month, day, today.Location())
		if !ok {
			return "", false
		}
		return d.Format(dateLayout), true
	}

	// четыре года хватает, чтобы дойти до 29 февраля
	for y := today.Year(); y <= today.Year()+4; y++ {
		d, ok := calendarDate(y, month, day, today.Location())
		if ok && !d.Before(today) {
			return d.Format(dateLayout), true
		}
	}
	return "", false
}

func calendarDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}
