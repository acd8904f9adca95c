// Package telegram pushes station events to a configured chat. The bot is
// one-way: it reports boot results, transaction starts and stops, and
// signature rejections.
package telegram

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"evstation/ocpp/provisioning"
	"evstation/ocpp/security"
	"evstation/ocpp/transactions"
	"evstation/station"
)

type TgBot struct {
	api    *tgbotapi.BotAPI
	chatId int64
	send   chan string
}

func NewBot(apiKey string, chatId int64) (*TgBot, error) {
	api, err := tgbotapi.NewBotAPI(apiKey)
	if err != nil {
		return nil, err
	}
	return &TgBot{
		api:    api,
		chatId: chatId,
		send:   make(chan string, 100),
	}, nil
}

func (b *TgBot) Start() {
	go b.sendPump()
}

func (b *TgBot) sendPump() {
	for text := range b.send {
		msg := tgbotapi.NewMessage(b.chatId, text)
		msg.ParseMode = "Markdown"
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("bot: error sending message: %v", err)
		}
	}
}

func (b *TgBot) notify(text string) {
	select {
	case b.send <- text:
	default:
	}
}

// Bind subscribes the bot to the station events it reports on.
func (b *TgBot) Bind(events *station.EventRegistry) {
	events.OnResponseReceived(provisioning.BootNotificationFeatureName,
		func(feature string, payload interface{}, elapsed time.Duration) {
			if response, ok := payload.(*provisioning.BootNotificationResponse); ok {
				b.notify(fmt.Sprintf("Boot: *%s*, interval %d s", response.Status, response.Interval))
			}
		})
	events.OnResponseSent(transactions.RequestStartTransactionFeatureName,
		func(feature string, payload interface{}, elapsed time.Duration) {
			if response, ok := payload.(*transactions.RequestStartTransactionResponse); ok {
				b.notify(fmt.Sprintf("Start transaction: *%s* `%s`", response.Status, response.TransactionId))
			}
		})
	events.OnResponseSent(transactions.RequestStopTransactionFeatureName,
		func(feature string, payload interface{}, elapsed time.Duration) {
			if response, ok := payload.(*transactions.RequestStopTransactionResponse); ok {
				b.notify(fmt.Sprintf("Stop transaction: *%s*", response.Status))
			}
		})
	events.OnRequestSent(security.SecurityEventNotificationFeatureName,
		func(feature string, payload interface{}) {
			if request, ok := payload.(*security.SecurityEventNotificationRequest); ok {
				b.notify(fmt.Sprintf("Security event: *%s* %s", request.Type, request.TechInfo))
			}
		})
}
