package alert

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Notifier fans a failure message out to every Telegram chat on the list.
// Alerting is best-effort: a broken token or chat never fails the run on
// top of the failure being reported.
type Notifier struct {
	Token           string
	Chatlist        []string
	MessageTemplate string
}

func (n *Notifier) NotifyFailure(message string) {
	if n.Token == "" {
		log.Error().Msg("TOKEN not defined in environment, skip sending telegram message")
		return
	}

	chatIDs := DedupeChatIDs(n.Chatlist)
	if len(chatIDs) == 0 {
		log.Error().Msg("chatlist is empty (env var: TELEGRAM_CHATLIST)")
		return
	}

	text, err := RenderMessage(n.MessageTemplate, MessageData{Message: message})
	if err != nil {
		log.Error().Err(err).Msg("alert template failed, falling back to plain message")
		text = "Error while executing: " + message
	}

	bot, err := tgbotapi.NewBotAPI(n.Token)
	if err != nil {
		log.Error().Err(err).Msg("telegram bot setup failed")
		return
	}

	for _, chatID := range chatIDs {
		if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			log.Error().Err(err).Msgf("failed to send telegram message to %d", chatID)
		}
	}
}

// DedupeChatIDs parses the configured chat list, dropping blanks,
// non-numeric entries and duplicates while keeping the original order.
func DedupeChatIDs(chatlist []string) []int64 {
	seen := hashset.New()
	ids := make([]int64, 0, len(chatlist))

	for _, each := range chatlist {
		trimmed := strings.TrimSpace(each)
		if trimmed == "" || seen.Contains(trimmed) {
			continue
		}

		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			log.Error().Msgf("ignoring invalid telegram chat id [%s]", trimmed)
			continue
		}

		seen.Add(trimmed)
		ids = append(ids, id)
	}

	return ids
}
