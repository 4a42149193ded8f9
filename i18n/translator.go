package i18n

import "fmt"

// Translator renders localized messages for diagnostic and load-error codes.
// data provides the names to embed in the message (for example "field",
// "section", "expected", "path").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	field := data["field"]
	switch t.lang {
	case "ja":
		switch code {
		case "section_kind":
			return fmt.Sprintf("セクション %q がフィールドとして指定されています", field)
		case "missing_field":
			return fmt.Sprintf("フィールド %q%s がありません", field, jaSectionPortion(data))
		case "field_type":
			return fmt.Sprintf(
				"フィールド %q%s の型が不正です\n  期待される型は %q です",
				field, jaSectionPortion(data), data["expected"],
			)
		case "missing_section":
			return fmt.Sprintf("セクション %q がありません", field)
		case "nonexistent_field":
			return fmt.Sprintf("フィールド %q%s は認識されません", field, jaSectionPortion(data))
		case "file_not_found":
			return fmt.Sprintf("ファイル %q が見つかりません", data["path"])
		case "permission_denied":
			return fmt.Sprintf("ファイル %q を読み取れません（権限がありません）", data["path"])
		case "malformed_syntax":
			return fmt.Sprintf("ファイル %q を解析できませんでした", data["path"])
		}
	default: // "en"
		switch code {
		case "section_kind":
			return fmt.Sprintf("section %q was incorrectly provided as a field", field)
		case "missing_field":
			return fmt.Sprintf("field %q%s is missing", field, sectionPortion(data))
		case "field_type":
			return fmt.Sprintf(
				"field %q%s has an incorrect type\n  expected value of type %q",
				field, sectionPortion(data), data["expected"],
			)
		case "missing_section":
			return fmt.Sprintf("section %q is missing", field)
		case "nonexistent_field":
			return fmt.Sprintf("field %q%s is not recognized", field, sectionPortion(data))
		case "file_not_found":
			return fmt.Sprintf("file %q could not be found", data["path"])
		case "permission_denied":
			return fmt.Sprintf("file %q cannot be read (missing permissions)", data["path"])
		case "malformed_syntax":
			return fmt.Sprintf("file %q could not be parsed (malformed syntax)", data["path"])
		}
	}
	return code
}

func sectionPortion(data map[string]string) string {
	if data["section"] == "" {
		return ""
	}
	return fmt.Sprintf(" (in section %q)", data["section"])
}

func jaSectionPortion(data map[string]string) string {
	if data["section"] == "" {
		return ""
	}
	return fmt.Sprintf("（セクション %q 内）", data["section"])
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
