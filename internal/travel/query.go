package travel

// IATACode: трёхбуквенный код аэропорта или города.
type IATACode string

// TravelQuery: то, что удалось вытащить из одного сообщения.
// Пустое поле значит "не распознано".
type TravelQuery struct {
	Origin      IATACode
	Destination IATACode
	Date        string // YYYY-MM-DD
}

// HasCity: распознан хотя бы один город.
func (q TravelQuery) HasCity() bool {
	return q.Origin != "" || q.Destination != ""
}

func (q TravelQuery) IsEmpty() bool {
	return !q.HasCity() && q.Date == ""
}
