package i18n

var english = map[string]string{
	KeyWelcome:         "👋 Welcome to the DV Lottery application service! Please choose your language.",
	KeyLangSet:         "✅ Language set to English.",
	KeyMainMenu:        "Main menu. Tap Start to fill in your DV application, or type any question.",
	KeyBtnStart:        "📝 Start Application",
	KeyBtnPrice:        "💰 Price",
	KeyBtnHelp:         "❓ Help",
	KeyPriceInfo:       "The service fee is 300 ETB. The DV application itself is free; you pay for our expert filling service.",
	KeyHelpInfo:        "Tap Start to begin. We will ask for your name, gender, marital status, family members and photos. You can also type any question about the DV program.",
	KeyAskFirstName:    "Please enter your first name (as written in your passport).",
	KeyAskLastName:     "Please enter your last name.",
	KeyAskGender:       "Select your gender:",
	KeyMale:            "Male",
	KeyFemale:          "Female",
	KeyUndetermined:    "Unknown",
	KeyAskMarital:      "Select your marital status:",
	KeySingle:          "Single",
	KeyMarried:         "Married",
	KeyDivorced:        "Divorced",
	KeyWidowed:         "Widowed",
	KeyAskSpouseName:   "Enter your spouse's full name:",
	KeyAskSpousePhoto:  "Send your spouse's photo (white background, no glasses, looking straight).",
	KeyAskHasChildren:  "Do you have children under 21 years old?",
	KeyYes:             "Yes",
	KeyNo:              "No",
	KeyAskChildCount:   "How many children do you have? (1-20)",
	KeyAskChildName:    "Enter the full name of child %d:",
	KeyAskChildGender:  "Select the gender of child %d:",
	KeyAskChildPhoto:   "Send the photo of child %d.",
	KeyAskMainPhoto:    "Now send your own photo (white background, no glasses, looking straight).",
	KeyReviewTitle:     "📋 Please review your information:",
	KeyReviewName:      "👤 Name: %s %s",
	KeyReviewGender:    "⚧ Gender: %s",
	KeyReviewStatus:    "❤️ Status: %s",
	KeyReviewSpouse:    "💍 Spouse: %s",
	KeyReviewChild:     "👶 Child %d: %s (%s)",
	KeyReviewPhoto:     "📸 Main Photo: [Received]",
	KeyBtnConfirm:      "✅ Confirm",
	KeyBtnEdit:         "✏️ Edit",
	KeyPaymentMsg:      "Please pay 300 ETB and send a screenshot of the payment receipt.",
	KeyWaitApproval:    "⏳ Thank you! Your application was sent. Please wait for approval.",
	KeyApproved:        "✅ APPROVED! We are processing your application.",
	KeyInvalidName:     "The name must be at least 2 characters. Please try again.",
	KeyInvalidChoice:   "Please choose one of the buttons below.",
	KeyInvalidCount:    "Please enter a number between 1 and 20 (e.g. 1, 2).",
	KeyNeedPhoto:       "Please send a photo.",
	KeyUnexpectedPhoto: "A photo is not expected here.",
	KeyChooseLanguage:  "Please choose a language using the buttons above.",
	KeyAlreadySent:     "Your application was already sent. Please wait for approval, or send /start to begin a new one.",
	KeyAIError:         "Sorry, I am having trouble answering right now. Please try again later.",
	KeyRestart:         "Something went wrong with your application. Please send /start to begin again.",
}

var amharic = map[string]string{
	KeyWelcome:         "👋 እንኳን ወደ ዲቪ ሎተሪ ማመልከቻ አገልግሎት በደህና መጡ! እባክዎ ቋንቋ ይምረጡ።",
	KeyLangSet:         "✅ ቋንቋ ወደ አማርኛ ተቀይሯል።",
	KeyMainMenu:        "ዋና ማውጫ። ማመልከቻ ለመሙላት ጀምር ይጫኑ ወይም ማንኛውንም ጥያቄ ይጻፉ።",
	KeyBtnStart:        "📝 ማመልከቻ ጀምር",
	KeyBtnPrice:        "💰 ዋጋ",
	KeyBtnHelp:         "❓ እርዳታ",
	KeyPriceInfo:       "የአገልግሎት ክፍያው 300 ብር ነው። የዲቪ ማመልከቻው ነጻ ነው፤ የሚከፍሉት ለባለሙያ የመሙላት አገልግሎታችን ነው።",
	KeyHelpInfo:        "ለመጀመር ጀምር ይጫኑ። ስምዎን፣ ጾታዎን፣ የጋብቻ ሁኔታዎን፣ የቤተሰብ አባላትን እና ፎቶዎችን እንጠይቃለን። ስለ ዲቪ ፕሮግራም ማንኛውንም ጥያቄ መጻፍም ይችላሉ።",
	KeyAskFirstName:    "እባክዎ የመጀመሪያ ስምዎን ያስገቡ (በፓስፖርትዎ ላይ እንዳለው)።",
	KeyAskLastName:     "እባክዎ የአባት ስምዎን ያስገቡ።",
	KeyAskGender:       "ጾታዎን ይምረጡ፦",
	KeyMale:            "ወንድ",
	KeyFemale:          "ሴት",
	KeyUndetermined:    "ያልታወቀ",
	KeyAskMarital:      "የጋብቻ ሁኔታዎን ይምረጡ፦",
	KeySingle:          "ያላገባ",
	KeyMarried:         "ያገባ",
	KeyDivorced:        "የተፋታ",
	KeyWidowed:         "የትዳር አጋሩ የሞተበት",
	KeyAskSpouseName:   "የትዳር አጋርዎን ሙሉ ስም ያስገቡ፦",
	KeyAskSpousePhoto:  "የትዳር አጋርዎን ፎቶ ይላኩ (ነጭ ዳራ፣ ያለ መነጽር፣ ቀጥታ የሚያይ)።",
	KeyAskHasChildren:  "ከ21 ዓመት በታች የሆኑ ልጆች አሉዎት?",
	KeyYes:             "አዎ",
	KeyNo:              "የለም",
	KeyAskChildCount:   "ስንት ልጆች አሉዎት? (1-20)",
	KeyAskChildName:    "የልጅ %d ሙሉ ስም ያስገቡ፦",
	KeyAskChildGender:  "የልጅ %d ጾታ ይምረጡ፦",
	KeyAskChildPhoto:   "የልጅ %d ፎቶ ይላኩ።",
	KeyAskMainPhoto:    "አሁን የራስዎን ፎቶ ይላኩ (ነጭ ዳራ፣ ያለ መነጽር፣ ቀጥታ የሚያይ)።",
	KeyReviewTitle:     "📋 እባክዎ መረጃዎን ያረጋግጡ፦",
	KeyReviewName:      "👤 ስም፦ %s %s",
	KeyReviewGender:    "⚧ ጾታ፦ %s",
	KeyReviewStatus:    "❤️ ሁኔታ፦ %s",
	KeyReviewSpouse:    "💍 የትዳር አጋር፦ %s",
	KeyReviewChild:     "👶 ልጅ %d፦ %s (%s)",
	KeyReviewPhoto:     "📸 ዋና ፎቶ፦ [ደርሷል]",
	KeyBtnConfirm:      "✅ አረጋግጥ",
	KeyBtnEdit:         "✏️ አስተካክል",
	KeyPaymentMsg:      "እባክዎ 300 ብር ይክፈሉ እና የክፍያ ደረሰኙን ፎቶ ይላኩ።",
	KeyWaitApproval:    "⏳ እናመሰግናለን! ማመልከቻዎ ተልኳል። እባክዎ ማረጋገጫ ይጠብቁ።",
	KeyApproved:        "✅ ጸድቋል! ማመልከቻዎን በማስኬድ ላይ ነን።",
	KeyInvalidName:     "ስሙ ቢያንስ 2 ፊደላት መሆን አለበት። እባክዎ እንደገና ይሞክሩ።",
	KeyInvalidChoice:   "እባክዎ ከታች ካሉት አዝራሮች አንዱን ይምረጡ።",
	KeyInvalidCount:    "እባክዎ ከ1 እስከ 20 ያለ ቁጥር ያስገቡ (ለምሳሌ 1፣ 2)።",
	KeyNeedPhoto:       "እባክዎ ፎቶ ይላኩ።",
	KeyUnexpectedPhoto: "እዚህ ፎቶ አይጠበቅም።",
	KeyChooseLanguage:  "እባክዎ ከላይ ባሉት አዝራሮች ቋንቋ ይምረጡ።",
	KeyAlreadySent:     "ማመልከቻዎ አስቀድሞ ተልኳል። እባክዎ ማረጋገጫ ይጠብቁ ወይም አዲስ ለመጀመር /start ይላኩ።",
	KeyAIError:         "ይቅርታ፣ አሁን መልስ መስጠት አልቻልኩም። እባክዎ ቆይተው እንደገና ይሞክሩ።",
	KeyRestart:         "በማመልከቻዎ ላይ ችግር ተፈጥሯል። እባክዎ እንደገና ለመጀመር /start ይላኩ።",
}
