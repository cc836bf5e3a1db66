// Package handoff forwards completed dossiers to the reviewer chat and
// processes the reviewer's approval.
package handoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"DVBot/i18n"
	"DVBot/model"
	"DVBot/repo"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Emitter struct {
	messenger  Messenger
	store      repo.SubmissionStore
	texts      *i18n.Texts
	reviewerID int64

	now   func() time.Time
	newID func() string
}

// NewEmitter returns an emitter sending to reviewerID. A zero reviewerID
// makes every dispatch fail with model.ErrNoReviewer.
func NewEmitter(messenger Messenger, store repo.SubmissionStore, texts *i18n.Texts, reviewerID int64) *Emitter {
	return &Emitter{
		messenger:  messenger,
		store:      store,
		texts:      texts,
		reviewerID: reviewerID,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Dispatch sends the payment proof with the summary and the Approve button,
// then the applicant, spouse and children photos, in that order. A failed
// send does not stop the following ones and nothing is rolled back; all
// failures are returned joined.
func (e *Emitter) Dispatch(ctx context.Context, sess *model.Session) (*model.Submission, error) {
	d := sess.Dossier
	sub := &model.Submission{
		ID:                e.newID(),
		RequesterID:       sess.UserID,
		RequesterUsername: sess.Username,
		Language:          sess.Language,
		MainPhotoID:       d.MainPhotoID,
		PaymentPhotoID:    d.PaymentPhotoID,
		CreatedAt:         e.now(),
	}
	sub.Summary = Summary(e.texts, sess, sub.ID)
	if d.Spouse != nil {
		sub.SpousePhotoID = d.Spouse.PhotoID
	}
	for _, c := range d.Children {
		sub.ChildPhotoIDs = append(sub.ChildPhotoIDs, c.PhotoID)
	}

	var errs []error
	if err := e.store.CreateSubmission(ctx, sub); err != nil {
		errs = append(errs, err)
	}

	if e.reviewerID == 0 {
		return sub, errors.Join(append(errs, model.ErrNoReviewer)...)
	}

	send := func(photoID, caption string, markup models.ReplyMarkup) {
		_, err := e.messenger.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      e.reviewerID,
			Photo:       &models.InputFileString{Data: photoID},
			Caption:     caption,
			ReplyMarkup: markup,
		})
		if err != nil {
			log.Error().Err(err).Int64("requester_id", sess.UserID).Str("caption", caption).Msg("error sending photo to reviewer")
			errs = append(errs, fmt.Errorf("send %q: %w", caption, err))
		}
	}

	approve := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{
			{Text: "✅ Approve", CallbackData: ApprovalData(sess.UserID)},
		}},
	}
	send(d.PaymentPhotoID, Caption(e.texts, sess, sub.ID), approve)
	send(d.MainPhotoID, "📸 Main Photo: "+d.Applicant.FirstName, nil)
	if d.Spouse != nil {
		send(d.Spouse.PhotoID, "📸 Spouse Photo: "+d.Spouse.Name, nil)
	}
	for i, c := range d.Children {
		send(c.PhotoID, fmt.Sprintf("📸 Child %d: %s", i+1, c.Name), nil)
	}

	log.Info().
		Int64("requester_id", sess.UserID).
		Str("submission_id", sub.ID).
		Int("children", len(d.Children)).
		Int("failed", len(errs)).
		Msg("dossier handed to reviewer")

	return sub, errors.Join(errs...)
}

// ReviewerMessage identifies the reviewer's message holding the Approve button.
type ReviewerMessage struct {
	ChatID    int64
	MessageID int
	Caption   string
}

// Approve handles a tap on the Approve button. The reviewer's caption gets
// the done marker, the submission is marked approved and the requester is
// told. A requester that cannot be reached is only logged. A tap on a
// message already marked done, or on a message rendered for an older
// submission of the same requester, changes nothing. Taps coming from any
// chat but the reviewer's are refused with model.ErrForeignApproval.
func (e *Emitter) Approve(ctx context.Context, data string, msg ReviewerMessage) error {
	requesterID, err := ParseApproval(data)
	if err != nil {
		return err
	}
	if e.reviewerID == 0 || msg.ChatID != e.reviewerID {
		return fmt.Errorf("%w: chat %d", model.ErrForeignApproval, msg.ChatID)
	}

	caption, changed := MarkDone(msg.Caption)
	if !changed {
		log.Debug().Int64("requester_id", requesterID).Int("message_id", msg.MessageID).Msg("approval already recorded")
		return nil
	}
	if msg.MessageID != 0 {
		_, err := e.messenger.EditMessageCaption(ctx, &bot.EditMessageCaptionParams{
			ChatID:    msg.ChatID,
			MessageID: msg.MessageID,
			Caption:   caption,
		})
		if err != nil {
			log.Error().Err(err).Int64("requester_id", requesterID).Msg("error marking reviewer message done")
		}
	}

	lang := model.LanguageEnglish
	if prev, err := e.store.ReadSubmission(ctx, requesterID); err == nil {
		if ref := captionRef(msg.Caption); ref != "" && ref != prev.ID {
			log.Warn().
				Int64("requester_id", requesterID).
				Str("tapped", ref).
				Str("latest", prev.ID).
				Msg("approval tap on a superseded submission")
			return nil
		}
		if prev.Approved {
			return nil
		}
		lang = prev.Language
	}
	if _, err := e.store.ApproveSubmission(ctx, requesterID, e.now()); err != nil {
		log.Warn().Err(err).Int64("requester_id", requesterID).Msg("error recording approval")
	}

	_, err = e.messenger.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: requesterID,
		Text:   e.texts.Text(lang, i18n.KeyApproved),
	})
	if err != nil {
		log.Warn().Err(err).Int64("requester_id", requesterID).Msg("could not notify requester of approval")
	}
	log.Info().Int64("requester_id", requesterID).Msg("submission approved")
	return nil
}
