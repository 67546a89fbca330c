package ui

import "github.com/ytget/garage/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyBusinessEdition    = "business_edition"
	KeyAddImage           = "add_image"
	KeyClear              = "clear"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyMaxImageFileSize   = "max_image_file_size"
	KeyConvertBackslashes = "convert_backslashes"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyDropHint           = "drop_hint"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyInvalidSize        = "invalid_size"
	KeySummary            = "summary"

	KeyStatusFileAccess   = "status_file_access"
	KeyStatusOK           = "status_ok"
	KeyStatusJPEG2000     = "status_jpeg2000"
	KeyStatusJPEGLossless = "status_jpeg_lossless"
	KeyStatusNotJPEG      = "status_not_jpeg"
	KeyStatusSizeTooLarge = "status_size_too_large"
)

// statusKeys maps image statuses to their text keys
var statusKeys = map[model.ImageStatus]string{
	model.ImageStatusFileAccess:   KeyStatusFileAccess,
	model.ImageStatusOK:           KeyStatusOK,
	model.ImageStatusJPEG2000:     KeyStatusJPEG2000,
	model.ImageStatusJPEGLossless: KeyStatusJPEGLossless,
	model.ImageStatusNotJPEG:      KeyStatusNotJPEG,
	model.ImageStatusSizeTooLarge: KeyStatusSizeTooLarge,
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

// StatusText returns the localized description of an image status
func (l *Localization) StatusText(status model.ImageStatus) string {
	if key, ok := statusKeys[status]; ok {
		return l.GetText(key)
	}
	return status.Description()
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ja": "日本語",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Garage",
		KeyBusinessEdition:    "Business",
		KeyAddImage:           "Add Image",
		KeyClear:              "Clear",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyMaxImageFileSize:   "Max Image File Size (KiB)",
		KeyConvertBackslashes: "Convert \\ to / in dropped paths",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyDropHint:           "Drop JPEG or PNG files here",
		KeyErrorOpeningFile:   "Error opening file",
		KeyInvalidSize:        "Enter a size in KiB",
		KeySummary:            "%d of %d images can be used",

		KeyStatusFileAccess:   "Cannot read file",
		KeyStatusOK:           "OK",
		KeyStatusJPEG2000:     "JPEG 2000 is not supported",
		KeyStatusJPEGLossless: "Lossless JPEG is not supported",
		KeyStatusNotJPEG:      "Not a JPEG file",
		KeyStatusSizeTooLarge: "File is too large",
	}

	l.texts["ja"] = map[string]string{
		KeyAppTitle:           "Garage",
		KeyBusinessEdition:    "法人向け",
		KeyAddImage:           "画像を追加",
		KeyClear:              "クリア",
		KeySettings:           "設定",
		KeyFile:               "ファイル",
		KeyLanguage:           "言語",
		KeyMaxImageFileSize:   "画像ファイルの最大サイズ (KiB)",
		KeyConvertBackslashes: "ドロップしたパスの \\ を / に変換する",
		KeySave:               "保存",
		KeyCancel:             "キャンセル",
		KeySettingsSaved:      "設定を保存しました",
		KeyDropHint:           "JPEG/PNG ファイルをここにドロップ",
		KeyErrorOpeningFile:   "ファイルを開けませんでした",
		KeyInvalidSize:        "サイズを KiB で入力してください",
		KeySummary:            "%d / %d 件の画像が使用できます",

		KeyStatusFileAccess:   "ファイルを読み込めません",
		KeyStatusOK:           "OK",
		KeyStatusJPEG2000:     "JPEG 2000 には対応していません",
		KeyStatusJPEGLossless: "ロスレス JPEG には対応していません",
		KeyStatusNotJPEG:      "JPEG ファイルではありません",
		KeyStatusSizeTooLarge: "ファイルサイズが大きすぎます",
	}
}
