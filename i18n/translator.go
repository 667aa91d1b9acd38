package i18n

// Translator retrieves localized messages for cell-error codes.
// data provides optional metadata to embed in the message (for example,
// "column" or "pattern").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_number":
			return "数値として解釈できません"
		case "invalid_bool":
			return "真偽値として解釈できません"
		case "invalid_date":
			return "日付として解釈できません"
		case "invalid_format":
			return "フォーマットが不正です"
		case "decode_failed":
			return "カスタムデコードに失敗しました"
		case "not_serializable":
			return "シリアライズできません"
		}
	default: // "en"
		switch code {
		case "invalid_number":
			return "not a number"
		case "invalid_bool":
			return "not a boolean"
		case "invalid_date":
			return "not a valid date"
		case "invalid_format":
			return "invalid format"
		case "decode_failed":
			return "custom decode failed"
		case "not_serializable":
			return "not serializable"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
