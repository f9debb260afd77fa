package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rushapp/rush-bot/internal/service"
	"github.com/rushapp/rush-bot/internal/telegram"
)

const testWebAppURL = "https://rushminiapp.netlify.app/"

// fakeOnboarding — фиктивный OnboardingService
type fakeOnboarding struct {
	created bool
	err     error
	inputs  []service.OnboardInput
}

var _ service.OnboardingService = (*fakeOnboarding)(nil)

func (f *fakeOnboarding) Onboard(ctx context.Context, input service.OnboardInput) (bool, error) {
	f.inputs = append(f.inputs, input)
	return f.created, f.err
}

func startUpdate(text string) telegram.Update {
	return telegram.Update{
		UpdateID: 1,
		Message: &telegram.Message{
			MessageID: 10,
			From: &telegram.User{
				ID:        42,
				FirstName: "Ana",
				IsPremium: false,
			},
			Chat: telegram.Chat{ID: 42},
			Text: text,
		},
	}
}

func TestUpdateService_StartCommand_SendsWelcome(t *testing.T) {
	onboarding := &fakeOnboarding{created: true}
	tg := &fakeMessenger{}
	svc := service.NewUpdateService(newTestLogger(), onboarding, tg, testWebAppURL)

	err := svc.ProcessUpdate(context.Background(), startUpdate("/start ref_7"))
	assert.NoError(t, err)

	assert.Len(t, onboarding.inputs, 1)
	assert.Equal(t, "42", onboarding.inputs[0].UserID)
	assert.Equal(t, "Ana", onboarding.inputs[0].FirstName)
	assert.Equal(t, "/start ref_7", onboarding.inputs[0].CommandText)

	assert.Len(t, tg.sent, 1)
	reply := tg.sent[0]
	assert.Equal(t, int64(42), reply.chatID)
	assert.Equal(t, 10, reply.replyTo)
	assert.Contains(t, reply.text, "Hi, Ana!")
	assert.Contains(t, reply.text, "Welcome to Rush App!")

	// Клавиатура — одна кнопка, открывающая мини-приложение
	assert.NotNil(t, reply.markup)
	assert.Len(t, reply.markup.InlineKeyboard, 1)
	assert.Len(t, reply.markup.InlineKeyboard[0], 1)
	button := reply.markup.InlineKeyboard[0][0]
	assert.Equal(t, "open Rush App", button.Text)
	assert.NotNil(t, button.WebApp)
	assert.Equal(t, testWebAppURL, button.WebApp.URL)
}

// Приветствие отправляется и тогда, когда запись уже существовала
func TestUpdateService_ExistingUser_ResendsWelcome(t *testing.T) {
	onboarding := &fakeOnboarding{created: false}
	tg := &fakeMessenger{}
	svc := service.NewUpdateService(newTestLogger(), onboarding, tg, testWebAppURL)

	err := svc.ProcessUpdate(context.Background(), startUpdate("/start"))
	assert.NoError(t, err)
	assert.Len(t, tg.sent, 1)
	assert.Contains(t, tg.sent[0].text, "Hi, Ana!")
}

func TestUpdateService_OnboardingError_SendsErrorReply(t *testing.T) {
	onboarding := &fakeOnboarding{err: errors.New("firestore unavailable")}
	tg := &fakeMessenger{}
	svc := service.NewUpdateService(newTestLogger(), onboarding, tg, testWebAppURL)

	err := svc.ProcessUpdate(context.Background(), startUpdate("/start"))
	assert.Error(t, err, "processing error should be reported to the caller for logging")

	assert.Len(t, tg.sent, 1)
	assert.Equal(t, "Error. please try again", tg.sent[0].text)
	assert.Nil(t, tg.sent[0].markup)
}

func TestUpdateService_IgnoresNonStartUpdates(t *testing.T) {
	onboarding := &fakeOnboarding{}
	tg := &fakeMessenger{}
	svc := service.NewUpdateService(newTestLogger(), onboarding, tg, testWebAppURL)

	// не команда
	err := svc.ProcessUpdate(context.Background(), startUpdate("hello"))
	assert.NoError(t, err)
	// другая команда
	err = svc.ProcessUpdate(context.Background(), startUpdate("/help"))
	assert.NoError(t, err)
	// апдейт без сообщения
	err = svc.ProcessUpdate(context.Background(), telegram.Update{UpdateID: 2})
	assert.NoError(t, err)

	assert.Empty(t, onboarding.inputs)
	assert.Empty(t, tg.sent)
}

// /start@BotName тоже должен запускать онбординг
func TestUpdateService_StartWithBotMention(t *testing.T) {
	onboarding := &fakeOnboarding{created: true}
	tg := &fakeMessenger{}
	svc := service.NewUpdateService(newTestLogger(), onboarding, tg, testWebAppURL)

	err := svc.ProcessUpdate(context.Background(), startUpdate("/start@RushAppBot ref_7"))
	assert.NoError(t, err)
	assert.Len(t, onboarding.inputs, 1)
	assert.Len(t, tg.sent, 1)
}
