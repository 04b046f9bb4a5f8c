package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyConvert); got != "Convert" {
		t.Errorf("GetText(KeyConvert) = %s, expected Convert", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyConvert); got != "Конвертировать" {
		t.Errorf("GetText(KeyConvert) in ru = %s", got)
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Unknown key should fall back to itself, got %s", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system should map to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang, texts := range l.texts {
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_TranslateMessage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.TranslateMessage("Already correct format."); got != "Файл уже в этом формате." {
		t.Errorf("TranslateMessage = %s", got)
	}

	if got := l.TranslateMessage("raw stderr"); got != "raw stderr" {
		t.Errorf("untranslated messages should pass through, got %s", got)
	}
}
