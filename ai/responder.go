package ai

import (
	"context"
	"fmt"

	"DVBot/i18n"
	"DVBot/model"

	"github.com/rs/zerolog/log"
)

var languageNames = map[model.Language]string{
	model.LanguageEnglish: "English",
	model.LanguageAmharic: "Amharic",
}

// Responder relays model answers to users. It never fails: without a
// backend, or when the backend errors, it returns a localized apology.
type Responder struct {
	backend Backend
	texts   *i18n.Texts
}

// NewResponder returns a responder; backend may be nil.
func NewResponder(backend Backend, texts *i18n.Texts) *Responder {
	return &Responder{backend: backend, texts: texts}
}

// AnswerQuestion answers a free-text question asked outside the form.
func (r *Responder) AnswerQuestion(ctx context.Context, lang model.Language, question string) string {
	prompt := SystemPrompt + "\n\nUser Question: " + question
	return r.generate(ctx, lang, prompt)
}

// ExplainPhotoRequired asks the user to send an image instead of text.
func (r *Responder) ExplainPhotoRequired(ctx context.Context, lang model.Language, text string) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[model.LanguageEnglish]
	}
	prompt := SystemPrompt + fmt.Sprintf(photoRequiredPrompt, text, name)
	return r.generate(ctx, lang, prompt)
}

func (r *Responder) generate(ctx context.Context, lang model.Language, prompt string) string {
	if r.backend == nil {
		log.Warn().Msg("AI model is not connected")
		return r.texts.Text(lang, i18n.KeyAIError)
	}

	answer, err := r.backend.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("backend", r.backend.Name()).Msg("error generating AI answer")
		return r.texts.Text(lang, i18n.KeyAIError)
	}
	if answer == "" {
		log.Warn().Str("backend", r.backend.Name()).Msg("AI returned an empty answer")
		return r.texts.Text(lang, i18n.KeyAIError)
	}
	return answer
}
