package handler

import (
	"DVBot/form"
	"DVBot/model"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var languageButtons = []struct {
	lang  model.Language
	label string
}{
	{model.LanguageEnglish, "English 🇺🇸"},
	{model.LanguageAmharic, "አማርኛ 🇪🇹"},
}

func languagePicker() *models.InlineKeyboardMarkup {
	row := make([]models.InlineKeyboardButton, 0, len(languageButtons))
	for _, b := range languageButtons {
		row = append(row, models.InlineKeyboardButton{Text: b.label, CallbackData: languageData(b.lang)})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{row}}
}

func replyKeyboard(labels [][]string) *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(labels))
	for _, line := range labels {
		row := make([]models.KeyboardButton, 0, len(line))
		for _, label := range line {
			row = append(row, models.KeyboardButton{Text: label})
		}
		rows = append(rows, row)
	}
	return &models.ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
}

func renderReply(chatID int64, r form.Reply) *bot.SendMessageParams {
	params := &bot.SendMessageParams{ChatID: chatID, Text: r.Text}
	switch {
	case r.LanguagePicker:
		params.ReplyMarkup = languagePicker()
	case len(r.Buttons) > 0:
		params.ReplyMarkup = replyKeyboard(r.Buttons)
	case r.RemoveKeyboard:
		params.ReplyMarkup = &models.ReplyKeyboardRemove{RemoveKeyboard: true}
	}
	return params
}
