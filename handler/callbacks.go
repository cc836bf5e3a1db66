package handler

import (
	"context"
	"errors"
	"strings"

	"DVBot/handoff"
	"DVBot/model"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const LanguagePrefix = "lang_"

func languageData(lang model.Language) string {
	return LanguagePrefix + string(lang)
}

func parseLanguage(data string) (model.Language, error) {
	raw, ok := strings.CutPrefix(data, LanguagePrefix)
	lang := model.Language(raw)
	if !ok || !lang.Valid() {
		return "", model.ErrBadCallbackData
	}
	return lang, nil
}

func (h *BotHandler) LanguageCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.languageCallback(ctx, b, update)
}

func (h *BotHandler) ApproveCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.approveCallback(ctx, b, update)
}

func (h *BotHandler) languageCallback(ctx context.Context, m Messenger, update *models.Update) {
	cq := update.CallbackQuery
	answerCallback(ctx, m, cq.ID)

	lang, err := parseLanguage(cq.Data)
	if err != nil {
		log.Warn().Err(err).Str("data", cq.Data).Msg("ignoring language callback")
		return
	}

	chatID := callbackChatID(cq)

	sess, err := h.loadSession(ctx, chatID, &cq.From)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error loading session")
		return
	}

	res, err := h.machine.SelectLanguage(ctx, sess, lang)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Str("state", string(sess.State)).Msg("error selecting language")
		return
	}
	if !res.Accepted {
		log.Debug().Int64("chat_id", chatID).Str("state", string(sess.State)).Msg("language change ignored mid-form")
		return
	}
	h.saveSession(ctx, sess)
	h.sendReplies(ctx, m, chatID, res.Replies)
}

func (h *BotHandler) approveCallback(ctx context.Context, m Messenger, update *models.Update) {
	cq := update.CallbackQuery
	answerCallback(ctx, m, cq.ID)

	msg := handoff.ReviewerMessage{ChatID: callbackChatID(cq)}
	if reviewed := cq.Message.Message; reviewed != nil {
		msg.MessageID = reviewed.ID
		msg.Caption = reviewed.Caption
	}

	err := h.emitter.Approve(ctx, cq.Data, msg)
	switch {
	case errors.Is(err, model.ErrBadCallbackData), errors.Is(err, model.ErrForeignApproval):
		log.Warn().Err(err).Int64("chat_id", msg.ChatID).Msg("ignoring approval callback")
	case err != nil:
		log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("error approving submission")
	}
}

func answerCallback(ctx context.Context, m Messenger, id string) {
	_, err := m.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: id})
	if err != nil {
		log.Warn().Err(err).Msg("error answering callback query")
	}
}

// callbackChatID is the chat of the message carrying the button, or the
// tapping user when that message is no longer accessible.
func callbackChatID(cq *models.CallbackQuery) int64 {
	switch {
	case cq.Message.Message != nil:
		return cq.Message.Message.Chat.ID
	case cq.Message.InaccessibleMessage != nil:
		return cq.Message.InaccessibleMessage.Chat.ID
	}
	return cq.From.ID
}
