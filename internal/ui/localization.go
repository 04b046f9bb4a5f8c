package ui

import "github.com/ytget/media-converter/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseFile        = "choose_file"
	KeyNoFileSelected    = "no_file_selected"
	KeySelectedFile      = "selected_file"
	KeyPreviewHint       = "preview_hint"
	KeyWillOutput        = "will_output"
	KeyNoOutputs         = "no_outputs"
	KeyUnsupportedFile   = "unsupported_file"
	KeyConvert           = "convert"
	KeyConverting        = "converting"
	KeyConverted         = "converted"
	KeyShowInFolder      = "show_in_folder"
	KeyOpen              = "open"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyToolMissing       = "tool_missing"
	KeyMsgUnsupported    = "msg_unsupported"
	KeyHintUnsupported   = "hint_unsupported"
	KeyMsgAlreadyFormat  = "msg_already_format"
	KeyHintAlreadyFormat = "hint_already_format"
	KeyMsgToolFailed     = "msg_tool_failed"
	KeyMsgLaunchFailed   = "msg_launch_failed"
)

// messageKeys maps the English result messages produced by the converter to localization keys
var messageKeys = map[string]string{
	model.MsgUnsupportedFormat: KeyMsgUnsupported,
	model.HintUnsupported:      KeyHintUnsupported,
	model.MsgAlreadyFormat:     KeyMsgAlreadyFormat,
	model.HintAlreadyFormat:    KeyHintAlreadyFormat,
	model.MsgToolFailed:        KeyMsgToolFailed,
	model.MsgLaunchFailed:      KeyMsgLaunchFailed,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// TranslateMessage localizes a converter message, returning msg unchanged when it has no translation
func (l *Localization) TranslateMessage(msg string) string {
	key, ok := messageKeys[msg]
	if !ok {
		return msg
	}
	return l.GetText(key)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Offline Media Converter",
		KeyChooseFile:        "Choose Input File",
		KeyNoFileSelected:    "No file selected",
		KeySelectedFile:      "Selected: %s",
		KeyPreviewHint:       "Select a file to see output preview",
		KeyWillOutput:        "Will output: %s",
		KeyNoOutputs:         "No conversions available for this file type",
		KeyUnsupportedFile:   "Unsupported file type",
		KeyConvert:           "Convert",
		KeyConverting:        "Converting...",
		KeyConverted:         "Converted: %s",
		KeyShowInFolder:      "Show in Folder",
		KeyOpen:              "Open",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyFFmpegPath:        "FFmpeg executable",
		KeyAutoReveal:        "Show converted file in folder",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyToolMissing:       "FFmpeg was not found. Install it or set its path in Settings.",
		KeyMsgUnsupported:    "Unsupported format selected.",
		KeyHintUnsupported:   "Choose a valid format.",
		KeyMsgAlreadyFormat:  "Already correct format.",
		KeyHintAlreadyFormat: "No conversion needed.",
		KeyMsgToolFailed:     "FFmpeg failed.",
		KeyMsgLaunchFailed:   "Failed to run FFmpeg.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Офлайн конвертер медиа",
		KeyChooseFile:        "Выбрать файл",
		KeyNoFileSelected:    "Файл не выбран",
		KeySelectedFile:      "Выбран: %s",
		KeyPreviewHint:       "Выберите файл, чтобы увидеть результат",
		KeyWillOutput:        "Результат: %s",
		KeyNoOutputs:         "Для этого типа файла нет доступных форматов",
		KeyUnsupportedFile:   "Неподдерживаемый тип файла",
		KeyConvert:           "Конвертировать",
		KeyConverting:        "Конвертация...",
		KeyConverted:         "Готово: %s",
		KeyShowInFolder:      "Показать в папке",
		KeyOpen:              "Открыть",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyFFmpegPath:        "Исполняемый файл FFmpeg",
		KeyAutoReveal:        "Показывать готовый файл в папке",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyToolMissing:       "FFmpeg не найден. Установите его или укажите путь в настройках.",
		KeyMsgUnsupported:    "Выбран неподдерживаемый формат.",
		KeyHintUnsupported:   "Выберите допустимый формат.",
		KeyMsgAlreadyFormat:  "Файл уже в этом формате.",
		KeyHintAlreadyFormat: "Конвертация не требуется.",
		KeyMsgToolFailed:     "Ошибка FFmpeg.",
		KeyMsgLaunchFailed:   "Не удалось запустить FFmpeg.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Mídia Offline",
		KeyChooseFile:        "Escolher Arquivo",
		KeyNoFileSelected:    "Nenhum arquivo selecionado",
		KeySelectedFile:      "Selecionado: %s",
		KeyPreviewHint:       "Selecione um arquivo para ver a saída",
		KeyWillOutput:        "Saída: %s",
		KeyNoOutputs:         "Nenhuma conversão disponível para este tipo de arquivo",
		KeyUnsupportedFile:   "Tipo de arquivo não suportado",
		KeyConvert:           "Converter",
		KeyConverting:        "Convertendo...",
		KeyConverted:         "Convertido: %s",
		KeyShowInFolder:      "Mostrar na Pasta",
		KeyOpen:              "Abrir",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyFFmpegPath:        "Executável do FFmpeg",
		KeyAutoReveal:        "Mostrar arquivo convertido na pasta",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyToolMissing:       "FFmpeg não encontrado. Instale-o ou defina o caminho nas Configurações.",
		KeyMsgUnsupported:    "Formato não suportado selecionado.",
		KeyHintUnsupported:   "Escolha um formato válido.",
		KeyMsgAlreadyFormat:  "Já está no formato correto.",
		KeyHintAlreadyFormat: "Nenhuma conversão necessária.",
		KeyMsgToolFailed:     "O FFmpeg falhou.",
		KeyMsgLaunchFailed:   "Falha ao executar o FFmpeg.",
	}
}
