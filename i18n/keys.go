package i18n

const (
	KeyWelcome         = "welcome"
	KeyLangSet         = "lang_set"
	KeyMainMenu        = "main_menu"
	KeyBtnStart        = "btn_start"
	KeyBtnPrice        = "btn_price"
	KeyBtnHelp         = "btn_help"
	KeyPriceInfo       = "price_info"
	KeyHelpInfo        = "help_info"
	KeyAskFirstName    = "ask_firstname"
	KeyAskLastName     = "ask_lastname"
	KeyAskGender       = "ask_gender"
	KeyMale            = "male"
	KeyFemale          = "female"
	KeyUndetermined    = "undetermined"
	KeyAskMarital      = "ask_marital"
	KeySingle          = "single"
	KeyMarried         = "married"
	KeyDivorced        = "divorced"
	KeyWidowed         = "widowed"
	KeyAskSpouseName   = "ask_spouse_name"
	KeyAskSpousePhoto  = "ask_spouse_photo"
	KeyAskHasChildren  = "ask_has_children"
	KeyYes             = "yes"
	KeyNo              = "no"
	KeyAskChildCount   = "ask_child_count"
	KeyAskChildName    = "ask_child_name"
	KeyAskChildGender  = "ask_child_gender"
	KeyAskChildPhoto   = "ask_child_photo"
	KeyAskMainPhoto    = "ask_main_photo"
	KeyReviewTitle     = "review_title"
	KeyReviewName      = "review_name"
	KeyReviewGender    = "review_gender"
	KeyReviewStatus    = "review_status"
	KeyReviewSpouse    = "review_spouse"
	KeyReviewChild     = "review_child"
	KeyReviewPhoto     = "review_photo"
	KeyBtnConfirm      = "btn_confirm"
	KeyBtnEdit         = "btn_edit"
	KeyPaymentMsg      = "payment_msg"
	KeyWaitApproval    = "wait_approval"
	KeyApproved        = "approved"
	KeyInvalidName     = "invalid_name"
	KeyInvalidChoice   = "invalid_choice"
	KeyInvalidCount    = "invalid_count"
	KeyNeedPhoto       = "need_photo"
	KeyUnexpectedPhoto = "unexpected_photo"
	KeyChooseLanguage  = "choose_language"
	KeyAlreadySent     = "already_sent"
	KeyAIError         = "ai_error"
	KeyRestart         = "restart"
)
