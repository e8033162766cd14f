package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobharvest-automation/internal/config"
	"go-jobharvest-automation/internal/pipeline"
)

// TelegramReporter pushes the run summary to a chat. It is optional: a
// run without a configured token simply skips reporting.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramReporter returns (nil, nil) when no token is configured.
func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary reports the terminal counters of one run.
func (t *TelegramReporter) SendSummary(site string, res pipeline.Result) error {
	status := "✅"
	if !res.Success {
		status = "❌"
	}
	text := fmt.Sprintf(
		"%s <b>jobharvest run: %s</b>\n"+
			"🔎 Scraped: %d\n"+
			"💾 Saved: %d\n"+
			"♻️ Duplicates: %d\n"+
			"⚠️ Errors: %d",
		status, site, res.Scraped, res.Saved, res.Duplicates, res.Errors,
	)
	if res.Error != "" {
		text += fmt.Sprintf("\n🚨 %s", res.Error)
	}
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>jobharvest error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
