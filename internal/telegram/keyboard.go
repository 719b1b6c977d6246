package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Button: одна inline-кнопка со ссылкой на форму поиска.
type Button struct {
	Label string
	URL   string
}

// в tgbotapi v5.5.1 нет web_app у InlineKeyboardButton, поэтому разметку собираем сами
type webAppInfo struct {
	URL string `json:"url"`
}

type webAppButton struct {
	Text   string     `json:"text"`
	WebApp webAppInfo `json:"web_app"`
}

type webAppMarkup struct {
	InlineKeyboard [][]webAppButton `json:"inline_keyboard"`
}

// webAppMessageParams: параметры sendMessage с одной кнопкой, открывающей веб-приложение
// внутри клиента. Работает только в личных чатах.
func webAppMessageParams(chatID int64, text string, btn Button) (tgbotapi.Params, error) {
	params := make(tgbotapi.Params)
	params.AddNonZero64("chat_id", chatID)
	params.AddNonEmpty("text", text)

	markup := webAppMarkup{
		InlineKeyboard: [][]webAppButton{{
			{Text: btn.Label, WebApp: webAppInfo{URL: btn.URL}},
		}},
	}
	if err := params.AddInterface("reply_markup", markup); err != nil {
		return nil, err
	}
	return params, nil
}

// urlButtonMessage: то же самое для групп: обычная ссылка в браузере.
func urlButtonMessage(chatID int64, text string, btn Button) tgbotapi.MessageConfig {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(btn.Label, btn.URL),
		),
	)
	return m
}
