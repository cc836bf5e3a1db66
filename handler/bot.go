// Package handler connects Telegram updates to the application form, the AI
// responder and the reviewer handoff.
package handler

import (
	"context"
	"errors"
	"strings"

	"DVBot/ai"
	"DVBot/form"
	"DVBot/handoff"
	"DVBot/i18n"
	"DVBot/model"
	"DVBot/repo"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const startCommand = "/start"

// Messenger is the part of *bot.Bot the handlers talk to.
type Messenger interface {
	handoff.Messenger
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

type BotHandler struct {
	machine   *form.Machine
	sessions  repo.SessionStore
	emitter   *handoff.Emitter
	responder *ai.Responder
	texts     *i18n.Texts
}

func NewBotHandler(
	machine *form.Machine,
	sessions repo.SessionStore,
	emitter *handoff.Emitter,
	responder *ai.Responder,
	texts *i18n.Texts,
) *BotHandler {
	return &BotHandler{
		machine:   machine,
		sessions:  sessions,
		emitter:   emitter,
		responder: responder,
		texts:     texts,
	}
}

// Register installs the command, message and callback handlers on b. Updates
// of one chat are expected to arrive through a ConversationQueue.
func (h *BotHandler) Register(b *bot.Bot) {
	b.RegisterHandlerMatchFunc(isStartMessage, h.Start)
	b.RegisterHandlerMatchFunc(isFormMessage, h.Message)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, LanguagePrefix, bot.MatchTypePrefix, h.LanguageCallback)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, handoff.ApprovePrefix, bot.MatchTypePrefix, h.ApproveCallback)
}

// isStartCommand accepts "/start", "/start@BotName" and deep links
// ("/start payload").
func isStartCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return cmd == startCommand
}

func isStartMessage(update *models.Update) bool {
	return update.Message != nil && isStartCommand(update.Message.Text)
}

func isFormMessage(update *models.Update) bool {
	return update.Message != nil && !isStartCommand(update.Message.Text)
}

func (h *BotHandler) Start(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.start(ctx, b, update)
}

func (h *BotHandler) Message(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.message(ctx, b, update)
}

// Default handles updates no other handler matched.
func Default(ctx context.Context, b *bot.Bot, update *models.Update) {
	unhandled(ctx, b, update)
}

func (h *BotHandler) start(ctx context.Context, m Messenger, update *models.Update) {
	msg := update.Message
	chatID := msg.Chat.ID

	sess, err := h.loadSession(ctx, chatID, msg.From)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error loading session")
		sess = model.NewSession(chatID)
		sess.Username = username(msg.From)
	}

	res, err := h.machine.Start(ctx, sess)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Str("state", string(sess.State)).Msg("error restarting conversation")
		return
	}
	h.saveSession(ctx, sess)
	h.sendReplies(ctx, m, chatID, res.Replies)
}

func (h *BotHandler) message(ctx context.Context, m Messenger, update *models.Update) {
	msg := update.Message
	chatID := msg.Chat.ID

	sess, err := h.loadSession(ctx, chatID, msg.From)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error loading session")
		h.sendText(ctx, m, chatID, h.texts.Text(model.LanguageEnglish, i18n.KeyRestart))
		return
	}

	log.Debug().
		Int64("chat_id", chatID).
		Str("state", string(sess.State)).
		Bool("photo", len(msg.Photo) > 0).
		Msg("message received")

	res, err := h.machine.Step(ctx, sess, inputFrom(msg))
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Str("state", string(sess.State)).Msg("error processing form input")
		h.sendText(ctx, m, chatID, h.texts.Text(sess.Language, i18n.KeyRestart))
		return
	}

	if res.Fallback != nil {
		h.sendText(ctx, m, chatID, h.fallback(ctx, res.Fallback))
		return
	}

	if res.Accepted {
		h.saveSession(ctx, sess)
	}
	if res.Handoff {
		if _, err := h.emitter.Dispatch(ctx, sess); err != nil {
			log.Error().Err(err).Int64("chat_id", chatID).Msg("error handing dossier to reviewer")
		}
	}
	h.sendReplies(ctx, m, chatID, res.Replies)
}

func (h *BotHandler) fallback(ctx context.Context, fb *form.Fallback) string {
	switch fb.Kind {
	case form.FallbackPhotoRequired:
		return h.responder.ExplainPhotoRequired(ctx, fb.Language, fb.Text)
	default:
		return h.responder.AnswerQuestion(ctx, fb.Language, fb.Text)
	}
}

func unhandled(ctx context.Context, m Messenger, update *models.Update) {
	if cq := update.CallbackQuery; cq != nil {
		answerCallback(ctx, m, cq.ID)
		log.Warn().Str("data", cq.Data).Int64("user_id", cq.From.ID).Msg("unknown callback data")
		return
	}
	log.Debug().Int64("update_id", update.ID).Msg("ignoring update")
}

// loadSession returns the stored session or a fresh one for a first contact.
func (h *BotHandler) loadSession(ctx context.Context, chatID int64, from *models.User) (*model.Session, error) {
	sess, err := h.sessions.GetSession(ctx, chatID)
	if errors.Is(err, model.ErrSessionNotFound) {
		sess = model.NewSession(chatID)
	} else if err != nil {
		return nil, err
	}
	if name := username(from); name != "" {
		sess.Username = name
	}
	return sess, nil
}

func (h *BotHandler) saveSession(ctx context.Context, sess *model.Session) {
	if err := h.sessions.SaveSession(ctx, sess); err != nil {
		log.Error().Err(err).Int64("chat_id", sess.UserID).Str("state", string(sess.State)).Msg("error saving session")
	}
}

func (h *BotHandler) sendReplies(ctx context.Context, m Messenger, chatID int64, replies []form.Reply) {
	for _, r := range replies {
		if _, err := m.SendMessage(ctx, renderReply(chatID, r)); err != nil {
			log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
		}
	}
}

func (h *BotHandler) sendText(ctx context.Context, m Messenger, chatID int64, text string) {
	_, err := m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
	}
}

// inputFrom keeps the largest photo size; Telegram lists sizes ascending.
func inputFrom(msg *models.Message) form.Input {
	in := form.Input{Text: strings.TrimSpace(msg.Text)}
	if n := len(msg.Photo); n > 0 {
		in.PhotoID = msg.Photo[n-1].FileID
	}
	return in
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
