package form

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"DVBot/i18n"
	"DVBot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var texts = i18n.New()

func en(key string, args ...any) string {
	return texts.Text(model.LanguageEnglish, key, args...)
}

func newTestMachine() *Machine {
	m := New(texts)
	m.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return m
}

// menuSession returns a session that picked lang and sits in the main menu.
func menuSession(t *testing.T, m *Machine, lang model.Language) *model.Session {
	t.Helper()
	sess := model.NewSession(42)
	_, err := m.SelectLanguage(context.Background(), sess, lang)
	require.NoError(t, err)
	require.Equal(t, model.StateMainMenu, sess.State)
	return sess
}

func step(t *testing.T, m *Machine, sess *model.Session, in Input) Result {
	t.Helper()
	res, err := m.Step(context.Background(), sess, in)
	require.NoError(t, err)
	return res
}

func text(s string) Input  { return Input{Text: s} }
func photo(s string) Input { return Input{PhotoID: s} }

func lastReply(t *testing.T, res Result) Reply {
	t.Helper()
	require.NotEmpty(t, res.Replies)
	return res.Replies[len(res.Replies)-1]
}

func TestStartAsksForLanguage(t *testing.T) {
	m := newTestMachine()
	sess := menuSession(t, m, model.LanguageAmharic)
	sess.Dossier.Applicant.FirstName = "John"

	res, err := m.Start(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, model.StateChoosingLanguage, sess.State)
	assert.Empty(t, sess.Language)
	assert.Empty(t, sess.Dossier.Applicant.FirstName)
	assert.True(t, lastReply(t, res).LanguagePicker)
}

func TestSelectLanguageOnlyFromMenu(t *testing.T) {
	m := newTestMachine()
	sess := menuSession(t, m, model.LanguageEnglish)
	step(t, m, sess, text(en(i18n.KeyBtnStart)))

	res, err := m.SelectLanguage(context.Background(), sess, model.LanguageAmharic)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, model.StateFirstName, sess.State)
	assert.Equal(t, model.LanguageEnglish, sess.Language)

	_, err = m.SelectLanguage(context.Background(), model.NewSession(1), model.Language("xx"))
	assert.ErrorIs(t, err, model.ErrBadCallbackData)
}

func TestScenarioSingleSkipsSpouse(t *testing.T) {
	m := newTestMachine()
	sess := menuSession(t, m, model.LanguageEnglish)

	step(t, m, sess, text("📝 Start Application"))
	step(t, m, sess, text("John"))
	step(t, m, sess, text("Doe"))
	step(t, m, sess, text("Male"))
	res := step(t, m, sess, text("Single"))

	assert.Equal(t, model.StateHasChildren, sess.State)
	assert.Nil(t, sess.Dossier.Spouse)
	assert.Equal(t, en(i18n.KeyAskHasChildren), lastReply(t, res).Text)
	assert.Equal(t, model.Applicant{
		FirstName:     "John",
		LastName:      "Doe",
		Gender:        model.GenderMale,
		MaritalStatus: model.MaritalSingle,
	}, sess.Dossier.Applicant)
}

func TestScenarioChildrenLoop(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{UserID: 1, Language: model.LanguageEnglish, State: model.StateHasChildren}

	step(t, m, sess, text("Yes"))
	res := step(t, m, sess, text("2"))
	assert.Equal(t, model.StateChildName, sess.State)
	assert.Equal(t, en(i18n.KeyAskChildName, 1), lastReply(t, res).Text)

	step(t, m, sess, text("Abel"))
	res = step(t, m, sess, text("Male"))
	assert.Equal(t, en(i18n.KeyAskChildPhoto, 1), lastReply(t, res).Text)
	assert.Empty(t, sess.Dossier.Children, "child is committed only with its photo")

	res = step(t, m, sess, photo("photo-abel"))
	assert.Equal(t, model.StateChildName, sess.State)
	assert.Equal(t, en(i18n.KeyAskChildName, 2), lastReply(t, res).Text)
	require.Len(t, sess.Dossier.Children, 1)
	assert.Equal(t, 2, sess.Loop.Index)
	assert.Empty(t, sess.Loop.Draft)

	step(t, m, sess, text("Sara"))
	step(t, m, sess, text("ሴት"))
	res = step(t, m, sess, photo("photo-sara"))

	assert.Equal(t, model.StateMainPhoto, sess.State)
	assert.Equal(t, en(i18n.KeyAskMainPhoto), lastReply(t, res).Text)
	assert.Nil(t, sess.Loop)
	assert.Equal(t, []model.Child{
		{Name: "Abel", Gender: model.GenderMale, PhotoID: "photo-abel"},
		{Name: "Sara", Gender: model.GenderFemale, PhotoID: "photo-sara"},
	}, sess.Dossier.Children)
}

func TestChildrenLoopLengthMatchesTarget(t *testing.T) {
	m := newTestMachine()
	for _, n := range []int{1, 3, MaxChildren} {
		sess := &model.Session{Language: model.LanguageEnglish, State: model.StateChildrenCount}
		step(t, m, sess, text(strconv.Itoa(n)))
		for i := 1; i <= n; i++ {
			require.Equal(t, model.StateChildName, sess.State)
			require.Equal(t, i, sess.Loop.Index)
			step(t, m, sess, text("Kid"))
			step(t, m, sess, text("Female"))
			step(t, m, sess, photo("p"))
			require.Len(t, sess.Dossier.Children, i)
		}
		assert.Equal(t, model.StateMainPhoto, sess.State)
		assert.Len(t, sess.Dossier.Children, n)
	}
}

func TestScenarioMarriedDerivesSpouseGender(t *testing.T) {
	m := newTestMachine()
	for _, tc := range []struct {
		lang      model.Language
		applicant model.Gender
		want      model.Gender
	}{
		{model.LanguageEnglish, model.GenderMale, model.GenderFemale},
		{model.LanguageEnglish, model.GenderFemale, model.GenderMale},
		{model.LanguageAmharic, model.GenderMale, model.GenderFemale},
		{model.LanguageAmharic, model.GenderFemale, model.GenderMale},
	} {
		sess := &model.Session{Language: tc.lang, State: model.StateGender}
		step(t, m, sess, text(texts.GenderLabel(tc.lang, tc.applicant)))
		step(t, m, sess, text(texts.MaritalStatusLabel(tc.lang, model.MaritalMarried)))
		require.Equal(t, model.StateSpouseName, sess.State)

		res := step(t, m, sess, text("Jane"))
		assert.Equal(t, model.StateSpousePhoto, sess.State)
		assert.Equal(t, texts.Text(tc.lang, i18n.KeyAskSpousePhoto), lastReply(t, res).Text)
		require.NotNil(t, sess.Dossier.Spouse)
		assert.Equal(t, tc.want, sess.Dossier.Spouse.Gender)

		step(t, m, sess, photo("spouse"))
		assert.Equal(t, model.StateHasChildren, sess.State)
		assert.Equal(t, "spouse", sess.Dossier.Spouse.PhotoID)
	}
}

func TestSpouseGenderUndetermined(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{
		Language: model.LanguageEnglish,
		State:    model.StateSpouseName,
		Dossier:  model.Dossier{Applicant: model.Applicant{Gender: model.Gender("other")}},
	}
	step(t, m, sess, text("Jane"))
	assert.Equal(t, model.GenderUndetermined, sess.Dossier.Spouse.Gender)
}

func TestScenarioTextInsteadOfPhoto(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{Language: model.LanguageAmharic, State: model.StateMainPhoto}
	before := sess.Clone()

	res := step(t, m, sess, text("I don't have one"))
	assert.False(t, res.Accepted)
	assert.Equal(t, before, sess)
	require.NotNil(t, res.Fallback)
	assert.Equal(t, FallbackPhotoRequired, res.Fallback.Kind)
	assert.Equal(t, "I don't have one", res.Fallback.Text)
	assert.Equal(t, model.LanguageAmharic, res.Fallback.Language)

	res = step(t, m, sess, Input{})
	assert.Equal(t, model.StateMainPhoto, sess.State)
	assert.Contains(t, lastReply(t, res).Text, texts.Text(model.LanguageAmharic, i18n.KeyNeedPhoto))
}

func TestRejectionLeavesSessionUntouched(t *testing.T) {
	m := newTestMachine()
	cases := []struct {
		state model.State
		input Input
	}{
		{model.StateFirstName, text("J")},
		{model.StateFirstName, text("   ")},
		{model.StateFirstName, photo("p")},
		{model.StateLastName, text("D")},
		{model.StateGender, text("Robot")},
		{model.StateMaritalStatus, text("Complicated")},
		{model.StateHasChildren, text("maybe")},
		{model.StateChildrenCount, text("abc")},
		{model.StateChildrenCount, text("0")},
		{model.StateChildrenCount, text("21")},
		{model.StateReviewInfo, text("whatever")},
		{model.StateMainPhoto, Input{}},
		{model.StateChoosingLanguage, text("hello")},
	}
	for _, tc := range cases {
		sess := &model.Session{
			UserID:   7,
			Language: model.LanguageEnglish,
			State:    tc.state,
			Dossier:  model.Dossier{Applicant: model.Applicant{FirstName: "John"}},
		}
		before := sess.Clone()

		first := step(t, m, sess, tc.input)
		assert.False(t, first.Accepted, "%s %+v", tc.state, tc.input)
		assert.Equal(t, before, sess, "%s %+v", tc.state, tc.input)

		second := step(t, m, sess, tc.input)
		assert.Equal(t, first, second, "re-prompt differs in %s", tc.state)
	}
}

func TestRejectionInsideChildLoop(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{
		Language: model.LanguageEnglish,
		State:    model.StateChildGender,
		Loop:     &model.ChildLoop{Target: 2, Index: 2, Draft: model.ChildDraft{Name: "Sara"}},
		Dossier:  model.Dossier{Children: []model.Child{{Name: "Abel", Gender: model.GenderMale, PhotoID: "a"}}},
	}
	before := sess.Clone()

	res := step(t, m, sess, text("Unknown"))
	assert.Equal(t, before, sess)
	reply := lastReply(t, res)
	assert.Contains(t, reply.Text, en(i18n.KeyAskChildGender, 2))
	assert.Equal(t, [][]string{{"Male", "Female"}}, reply.Buttons)
}

func TestChildLoopMissingIsError(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{Language: model.LanguageEnglish, State: model.StateChildPhoto}

	_, err := m.Step(context.Background(), sess, photo("p"))
	assert.ErrorIs(t, err, model.ErrCorruptSession)
	assert.Equal(t, model.StateChildPhoto, sess.State)
}

func TestMainMenu(t *testing.T) {
	m := newTestMachine()
	sess := menuSession(t, m, model.LanguageEnglish)

	res := step(t, m, sess, text("💰 Price"))
	assert.Equal(t, model.StateMainMenu, sess.State)
	assert.Equal(t, en(i18n.KeyPriceInfo), lastReply(t, res).Text)

	res = step(t, m, sess, text("What documents do I need?"))
	assert.Equal(t, model.StateMainMenu, sess.State)
	require.NotNil(t, res.Fallback)
	assert.Equal(t, FallbackQuestion, res.Fallback.Kind)

	// stale Amharic keyboard still starts the form
	step(t, m, sess, text("📝 ማመልከቻ ጀምር"))
	assert.Equal(t, model.StateFirstName, sess.State)
}

func TestReviewEditRestartsApplicant(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{
		Language: model.LanguageAmharic,
		State:    model.StateMainPhoto,
		Dossier: model.Dossier{
			Applicant: model.Applicant{FirstName: "John", LastName: "Doe", Gender: model.GenderMale, MaritalStatus: model.MaritalMarried},
			Spouse:    &model.Spouse{Name: "Jane", Gender: model.GenderFemale, PhotoID: "s"},
			Children:  []model.Child{{Name: "Abel", Gender: model.GenderMale, PhotoID: "c"}},
		},
	}

	res := step(t, m, sess, photo("main"))
	require.Equal(t, model.StateReviewInfo, sess.State)
	review := lastReply(t, res).Text
	assert.Contains(t, review, "John Doe")
	assert.Contains(t, review, "Jane")
	assert.Contains(t, review, "Abel (ወንድ)")

	res = step(t, m, sess, text("✏️ Edit"))
	assert.Equal(t, model.StateFirstName, sess.State)
	assert.Equal(t, model.LanguageAmharic, sess.Language)
	assert.Equal(t, model.Dossier{}, sess.Dossier)
	assert.Equal(t, texts.Text(model.LanguageAmharic, i18n.KeyAskFirstName), lastReply(t, res).Text)
}

func TestPaymentTriggersHandoff(t *testing.T) {
	m := newTestMachine()
	sess := &model.Session{Language: model.LanguageEnglish, State: model.StateReviewInfo}

	step(t, m, sess, text("✅ Confirm"))
	require.Equal(t, model.StatePaymentUpload, sess.State)

	res := step(t, m, sess, photo("receipt"))
	assert.True(t, res.Handoff)
	assert.Equal(t, model.StateAwaitingApproval, sess.State)
	assert.Equal(t, "receipt", sess.Dossier.PaymentPhotoID)
	assert.False(t, sess.SubmittedAt.IsZero())

	res = step(t, m, sess, photo("receipt-again"))
	assert.False(t, res.Handoff)
	assert.Equal(t, "receipt", sess.Dossier.PaymentPhotoID)
	assert.Equal(t, en(i18n.KeyAlreadySent), lastReply(t, res).Text)

	res = step(t, m, sess, text("when will I hear back?"))
	require.NotNil(t, res.Fallback)
	assert.Equal(t, FallbackQuestion, res.Fallback.Kind)
}

func TestGraph(t *testing.T) {
	assert.True(t, CanTransition(model.StateMaritalStatus, model.StateSpouseName))
	assert.True(t, CanTransition(model.StateMaritalStatus, model.StateHasChildren))
	assert.True(t, CanTransition(model.StateChildPhoto, model.StateChildName))
	assert.True(t, CanTransition(model.StateReviewInfo, model.StateFirstName))
	assert.True(t, CanTransition(model.StateAwaitingApproval, model.StateChoosingLanguage))
	assert.False(t, CanTransition(model.StateFirstName, model.StateGender))
	assert.False(t, CanTransition(model.StateMainPhoto, model.StatePaymentUpload))
	assert.False(t, CanTransition(model.StateAwaitingApproval, model.StateMainMenu))

	err := advance(context.Background(), model.StateGender, model.StateMainPhoto)
	assert.ErrorIs(t, err, model.ErrIllegalTransition)
}

// Random inputs must never move the form along an undeclared edge.
func TestRandomInputsFollowGraph(t *testing.T) {
	m := newTestMachine()
	r := rand.New(rand.NewSource(1))

	var pool []Input
	for _, lang := range model.Languages {
		for _, key := range []string{
			i18n.KeyBtnStart, i18n.KeyBtnPrice, i18n.KeyMale, i18n.KeyFemale, i18n.KeySingle,
			i18n.KeyMarried, i18n.KeyDivorced, i18n.KeyYes, i18n.KeyNo, i18n.KeyBtnConfirm, i18n.KeyBtnEdit,
		} {
			pool = append(pool, text(texts.Text(lang, key)))
		}
	}
	pool = append(pool, text("John"), text("x"), text("2"), text("25"), text("hello there"), photo("p"), Input{})

	for run := 0; run < 50; run++ {
		sess := menuSession(t, m, model.Languages[run%2])
		for i := 0; i < 200; i++ {
			in := pool[r.Intn(len(pool))]
			from := sess.State
			res, err := m.Step(context.Background(), sess, in)
			require.NoError(t, err)
			require.True(t, CanTransition(from, sess.State), "%s -> %s", from, sess.State)
			if !res.Accepted {
				require.Equal(t, from, sess.State)
			}
			if sess.State.InChildLoop() {
				require.NoError(t, checkLoop(sess))
				require.Len(t, sess.Dossier.Children, sess.Loop.Index-1)
			}
			if sess.State == model.StateAwaitingApproval {
				break
			}
		}
	}
}
