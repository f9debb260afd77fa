package telegram

// Инлайн-клавиатура описана вручную: в telegram-bot-api v5.5.1 ещё нет кнопок web_app.
// tgbotapi сериализует reply_markup через encoding/json, поэтому свои типы подходят.

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

type InlineKeyboardButton struct {
	Text   string      `json:"text"`
	URL    string      `json:"url,omitempty"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

type WebAppInfo struct {
	URL string `json:"url"`
}

// NewWebAppKeyboard создаёт клавиатуру с одной кнопкой, открывающей мини-приложение
func NewWebAppKeyboard(label, webAppURL string) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{
				{Text: label, WebApp: &WebAppInfo{URL: webAppURL}},
			},
		},
	}
}
