package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/fplboard/internal/service"
)

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, fplService *service.FPLService) (*TelegramBot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token not set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(fplService),
		chatID:  chatID,
	}, nil
}

// Start answers commands until ctx is done. Every reply is the result of one
// command; the bot never posts on its own.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if t.chatID != 0 && update.Message.Chat.ID != t.chatID {
				slog.Info("Ignoring command from unknown chat", "chat", update.Message.Chat.ID)
				continue
			}

			for _, msg := range t.handler.HandleCommand(ctx, update) {
				if _, err := t.bot.Send(msg); err != nil {
					slog.Error("Error sending message", "error", err)
					break
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}
