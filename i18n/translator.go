package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name", "want" or "have").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"type_mismatch": "cannot read {have} value as {want}",
		"out_of_range":  "index {index} out of range [0, {len})",
		"not_found":     "element {name} not found",
		"overflow":      "value does not fit in {want}",
		"unsupported":   "operation not supported by {have} element",
		"invalid_value": "invalid value",
		"null_value":    "element is null",
		"parse_error":   "parse error",
		"duplicate_key": "duplicate key",
		"truncated":     "truncated",
	},
	"ja": {
		"type_mismatch": "{have} の値を {want} として読み取れません",
		"out_of_range":  "インデックス {index} が範囲 [0, {len}) 外です",
		"not_found":     "要素 {name} が見つかりません",
		"overflow":      "値が {want} に収まりません",
		"unsupported":   "{have} 要素ではサポートされていない操作です",
		"invalid_value": "値が不正です",
		"null_value":    "要素が null です",
		"parse_error":   "解析エラー",
		"duplicate_key": "キーが重複しています",
		"truncated":     "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
