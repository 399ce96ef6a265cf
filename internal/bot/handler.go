package bot

import (
	"context"

	"github.com/ad/startlink-bot/internal/config"
	"github.com/ad/startlink-bot/internal/domain"
	"github.com/ad/startlink-bot/internal/locale"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// MessageSender is the part of the Telegram client the handler needs.
// *bot.Bot satisfies it.
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// BotHandler handles all Telegram bot interactions
type BotHandler struct {
	sender    MessageSender
	config    *config.Config
	logger    domain.Logger
	localizer locale.Localizer
}

// NewBotHandler creates a new BotHandler with all dependencies
func NewBotHandler(
	sender MessageSender,
	cfg *config.Config,
	logger domain.Logger,
	localizer locale.Localizer,
) *BotHandler {
	return &BotHandler{
		sender:    sender,
		config:    cfg,
		logger:    logger,
		localizer: localizer,
	}
}

// HandleStart handles the /start command.
// The optional argument is a base64url payload carrying referral and query identifiers;
// the reply links to the web app with those identifiers and the sender's premium flag.
// Nothing is sent back when the link cannot be composed.
func (h *BotHandler) HandleStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	msg := update.Message
	userID := senderID(msg.From)

	argument := domain.CommandArgument(msg.Text)
	params := domain.DecodeStartParams(argument)
	if argument != "" && len(params) == 0 {
		h.logger.Debug("start payload carried no parameters", "user_id", userID, "payload", argument)
	}

	premium := isPremium(msg.From)

	link, err := domain.ComposeLink(params, premium, h.config.WebAppURL)
	if err != nil {
		h.logger.Warn("failed to compose start link", "user_id", userID, "payload", argument, "error", err)
		return
	}

	if _, err := h.sender.SendMessage(ctx, h.startReply(msg.Chat.ID, link)); err != nil {
		h.logger.Error("failed to send start message", "user_id", userID, "chat_id", msg.Chat.ID, "error", err)
		return
	}

	h.logger.Info("start handled", "user_id", userID, "premium", premium, "params", len(link.Params))
}

// startReply builds the HTML message with the link shown twice and a single URL button
func (h *BotHandler) startReply(chatID int64, link domain.Link) *bot.SendMessageParams {
	kb := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: h.localizer.MustLocalize(locale.StartButtonVisit), URL: link.URL},
			},
		},
	}

	return &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        h.localizer.MustLocalizeWithTemplate(locale.StartGreeting, link.HTML()),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	}
}

// isPremium reports the sender's premium status; a missing sender is not premium
func isPremium(user *models.User) bool {
	return user != nil && user.IsPremium
}

func senderID(user *models.User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}
