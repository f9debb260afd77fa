package telegram

import "strings"

// Update — входящее событие Telegram, доставляемое вебхуком.
// Описано вручную: библиотечный тип не знает полей новых Bot API (is_premium, web_app).
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message представляет входящее сообщение
type Message struct {
	MessageID int    `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// User представляет пользователя Telegram
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
	IsPremium    bool   `json:"is_premium"`
}

// Chat представляет чат, из которого пришло сообщение
type Chat struct {
	ID int64 `json:"id"`
}

// IsCommand сообщает, является ли сообщение командой вида /cmd
func (m *Message) IsCommand() bool {
	return strings.HasPrefix(m.Text, "/")
}

// Command возвращает имя команды без слеша и без упоминания бота (/start@MyBot -> start)
func (m *Message) Command() string {
	if !m.IsCommand() {
		return ""
	}
	command := strings.Fields(m.Text)[0][1:]
	if at := strings.Index(command, "@"); at != -1 {
		command = command[:at]
	}
	return command
}
