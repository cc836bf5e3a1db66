// Package form implements the application wizard: a state machine that
// validates each answer, accumulates the dossier and decides the next prompt.
// It never talks to Telegram; callers deliver the returned replies.
package form

import (
	"context"
	"time"

	"DVBot/i18n"
	"DVBot/model"
)

// Input is one inbound message. PhotoID is the file id of the largest
// photo size, empty when the message carries no photo.
type Input struct {
	Text    string
	PhotoID string
}

func (in Input) HasPhoto() bool { return in.PhotoID != "" }

// Reply is an outbound message. Buttons is a reply keyboard; RemoveKeyboard
// hides the previous one. LanguagePicker asks the transport to attach the
// language selection buttons.
type Reply struct {
	Text           string
	Buttons        [][]string
	RemoveKeyboard bool
	LanguagePicker bool
}

type FallbackKind int

const (
	// FallbackQuestion answers a free-text question asked outside the form.
	FallbackQuestion FallbackKind = iota + 1
	// FallbackPhotoRequired explains that an image is expected instead of text.
	FallbackPhotoRequired
)

// Fallback asks the caller to answer Text through the AI responder.
type Fallback struct {
	Kind     FallbackKind
	Text     string
	Language model.Language
}

// Result is the outcome of one step.
type Result struct {
	Replies  []Reply
	Fallback *Fallback
	// Accepted is false when the session was left untouched: rejections,
	// menu info buttons and fallbacks.
	Accepted bool
	// Handoff is set once, when the payment proof completes the dossier.
	Handoff bool
}

type Machine struct {
	texts *i18n.Texts
	now   func() time.Time
}

func New(texts *i18n.Texts) *Machine {
	return &Machine{texts: texts, now: time.Now}
}

// Start resets sess to a fresh conversation waiting for a language choice.
func (m *Machine) Start(ctx context.Context, sess *model.Session) (Result, error) {
	if err := advance(ctx, sess.State, model.StateChoosingLanguage); err != nil {
		return Result{}, err
	}
	sess.Reset()
	sess.Language = ""
	sess.State = model.StateChoosingLanguage
	return Result{Accepted: true, Replies: []Reply{m.prompt(sess)}}, nil
}

// SelectLanguage records the conversation language and opens the main menu.
// It is accepted while choosing a language and from the main menu.
func (m *Machine) SelectLanguage(ctx context.Context, sess *model.Session, lang model.Language) (Result, error) {
	if !lang.Valid() {
		return Result{}, model.ErrBadCallbackData
	}
	switch sess.State {
	case model.StateChoosingLanguage, model.StateMainMenu:
	default:
		return Result{}, nil
	}
	if err := advance(ctx, sess.State, model.StateMainMenu); err != nil {
		return Result{}, err
	}
	sess.Language = lang
	sess.Reset()
	sess.State = model.StateMainMenu
	return Result{
		Accepted: true,
		Replies: []Reply{
			{Text: m.texts.Text(lang, i18n.KeyLangSet)},
			m.prompt(sess),
		},
	}, nil
}

// Step feeds one input to the form. On rejection sess is left exactly as it
// was. On acceptance the session moves along the declared graph only.
func (m *Machine) Step(ctx context.Context, sess *model.Session, in Input) (Result, error) {
	if !sess.State.Valid() {
		return Result{}, model.ErrCorruptSession
	}

	next := sess.Clone()
	res, err := m.transition(next, in)
	if err != nil || !res.Accepted {
		return res, err
	}
	if err := advance(ctx, sess.State, next.State); err != nil {
		return Result{}, err
	}
	*sess = *next
	return res, nil
}

func (m *Machine) transition(s *model.Session, in Input) (Result, error) {
	lang := s.Language

	if s.State.WantsPhoto() {
		if !in.HasPhoto() {
			if in.Text != "" {
				return Result{Fallback: &Fallback{Kind: FallbackPhotoRequired, Text: in.Text, Language: lang}}, nil
			}
			return m.reject(s, i18n.KeyNeedPhoto), nil
		}
		return m.acceptPhoto(s, in.PhotoID)
	}

	switch s.State {
	case model.StateChoosingLanguage:
		return m.reject(s, i18n.KeyChooseLanguage), nil
	case model.StateAwaitingApproval:
		if in.HasPhoto() || in.Text == "" {
			return Result{Replies: []Reply{{Text: m.texts.Text(lang, i18n.KeyAlreadySent)}}}, nil
		}
		return Result{Fallback: &Fallback{Kind: FallbackQuestion, Text: in.Text, Language: lang}}, nil
	}

	if in.HasPhoto() {
		return m.reject(s, i18n.KeyUnexpectedPhoto), nil
	}
	return m.acceptText(s, in.Text)
}

func (m *Machine) acceptText(s *model.Session, text string) (Result, error) {
	lang := s.Language
	d := &s.Dossier

	switch s.State {
	case model.StateMainMenu:
		key, ok := m.texts.MatchKey(text, i18n.KeyBtnStart, i18n.KeyBtnPrice, i18n.KeyBtnHelp)
		switch {
		case !ok:
			if text == "" {
				return m.reject(s, i18n.KeyInvalidChoice), nil
			}
			return Result{Fallback: &Fallback{Kind: FallbackQuestion, Text: text, Language: lang}}, nil
		case key == i18n.KeyBtnPrice:
			return m.info(s, i18n.KeyPriceInfo), nil
		case key == i18n.KeyBtnHelp:
			return m.info(s, i18n.KeyHelpInfo), nil
		}
		s.State = model.StateFirstName

	case model.StateFirstName:
		name, ok := ValidName(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidName), nil
		}
		d.Applicant.FirstName = name
		s.State = model.StateLastName

	case model.StateLastName:
		name, ok := ValidName(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidName), nil
		}
		d.Applicant.LastName = name
		s.State = model.StateGender

	case model.StateGender:
		g, ok := m.texts.ParseGender(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidChoice), nil
		}
		d.Applicant.Gender = g
		s.State = model.StateMaritalStatus

	case model.StateMaritalStatus:
		status, ok := m.texts.ParseMaritalStatus(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidChoice), nil
		}
		d.Applicant.MaritalStatus = status
		d.Spouse = nil
		if status == model.MaritalMarried {
			s.State = model.StateSpouseName
		} else {
			s.State = model.StateHasChildren
		}

	case model.StateSpouseName:
		name, ok := ValidName(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidName), nil
		}
		d.Spouse = &model.Spouse{
			Name:   name,
			Gender: m.texts.DeriveSpouseGender(m.texts.GenderLabel(lang, d.Applicant.Gender)),
		}
		s.State = model.StateSpousePhoto

	case model.StateHasChildren:
		key, ok := m.texts.MatchKey(text, i18n.KeyYes, i18n.KeyNo)
		if !ok {
			return m.reject(s, i18n.KeyInvalidChoice), nil
		}
		if key == i18n.KeyYes {
			s.State = model.StateChildrenCount
		} else {
			d.Children = nil
			s.State = model.StateMainPhoto
		}

	case model.StateChildrenCount:
		n, ok := ParseChildCount(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidCount), nil
		}
		enterChildLoop(s, n)
		s.State = model.StateChildName

	case model.StateChildName:
		if err := checkLoop(s); err != nil {
			return Result{}, err
		}
		name, ok := ValidName(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidName), nil
		}
		s.Loop.Draft.Name = name
		s.State = model.StateChildGender

	case model.StateChildGender:
		if err := checkLoop(s); err != nil {
			return Result{}, err
		}
		g, ok := m.texts.ParseGender(text)
		if !ok {
			return m.reject(s, i18n.KeyInvalidChoice), nil
		}
		s.Loop.Draft.Gender = g
		s.State = model.StateChildPhoto

	case model.StateReviewInfo:
		key, ok := m.texts.MatchKey(text, i18n.KeyBtnConfirm, i18n.KeyBtnEdit)
		if !ok {
			return m.reject(s, i18n.KeyInvalidChoice), nil
		}
		if key == i18n.KeyBtnEdit {
			s.Reset()
			s.State = model.StateFirstName
		} else {
			s.State = model.StatePaymentUpload
		}

	default:
		return Result{}, model.ErrCorruptSession
	}

	return m.accepted(s), nil
}

func (m *Machine) acceptPhoto(s *model.Session, photoID string) (Result, error) {
	d := &s.Dossier

	switch s.State {
	case model.StateSpousePhoto:
		if d.Spouse == nil {
			return Result{}, model.ErrCorruptSession
		}
		d.Spouse.PhotoID = photoID
		s.State = model.StateHasChildren

	case model.StateChildPhoto:
		if err := checkLoop(s); err != nil {
			return Result{}, err
		}
		next, err := commitChild(s, photoID)
		if err != nil {
			return Result{}, err
		}
		s.State = next

	case model.StateMainPhoto:
		d.MainPhotoID = photoID
		s.State = model.StateReviewInfo

	case model.StatePaymentUpload:
		d.PaymentPhotoID = photoID
		s.SubmittedAt = m.now()
		s.State = model.StateAwaitingApproval
		res := m.accepted(s)
		res.Handoff = true
		return res, nil

	default:
		return Result{}, model.ErrCorruptSession
	}

	return m.accepted(s), nil
}

func (m *Machine) accepted(s *model.Session) Result {
	return Result{Accepted: true, Replies: []Reply{m.prompt(s)}}
}

// reject re-issues the current prompt prefixed with the reason. The output
// depends only on the session, so repeating an invalid input repeats it.
func (m *Machine) reject(s *model.Session, reasonKey string) Result {
	p := m.prompt(s)
	p.Text = m.texts.Text(s.Language, reasonKey) + "\n\n" + p.Text
	return Result{Replies: []Reply{p}}
}

// info answers a main menu button without leaving the menu.
func (m *Machine) info(s *model.Session, key string) Result {
	p := m.prompt(s)
	p.Text = m.texts.Text(s.Language, key)
	return Result{Replies: []Reply{p}}
}
