package ui

import (
	"maps"
	"slices"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyAddChampion       = "add_champion"
	KeyEnterChampion     = "enter_champion"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInterface         = "interface"
	KeyData              = "data"
	KeyDataVersion       = "data_version"
	KeyConfigFile        = "config_file"
	KeyReveal            = "reveal"
	KeyErrorRevealing    = "error_revealing"
	KeyPleaseEnterName   = "please_enter_name"
	KeyAlreadyTracked    = "already_tracked"
	KeyUnknownChampion   = "unknown_champion"
	KeyDidYouMean        = "did_you_mean"
	KeyLoadingChampion   = "loading_champion"
	KeyDataUnavailable   = "data_unavailable"
	KeyIconsUnavailable  = "icons_unavailable"
	KeyAbilityHaste      = "ability_haste"
	KeyCountdownFailed   = "countdown_failed"
	KeyLevelChangeFailed = "level_change_failed"
)

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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// sortedLanguageCodes returns language codes in a stable menu order
func sortedLanguageCodes(languages map[string]string) []string {
	return slices.Sorted(maps.Keys(languages))
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "LoL Cooldowns",
		KeyAddChampion:       "Add Champion",
		KeyEnterChampion:     "Champion name (e.g. Ahri)",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInterface:         "Interface",
		KeyData:              "Data Dragon",
		KeyDataVersion:       "Data version",
		KeyConfigFile:        "Config file",
		KeyReveal:            "Reveal",
		KeyErrorRevealing:    "Error opening file manager",
		KeyPleaseEnterName:   "Please enter a champion name",
		KeyAlreadyTracked:    "Champion already added",
		KeyUnknownChampion:   "Unknown champion",
		KeyDidYouMean:        "did you mean",
		KeyLoadingChampion:   "Loading champion...",
		KeyDataUnavailable:   "Champion data unavailable",
		KeyIconsUnavailable:  "Some ability icons could not be loaded",
		KeyAbilityHaste:      "Ability haste",
		KeyCountdownFailed:   "Cannot start cooldown",
		KeyLevelChangeFailed: "Cannot change ability level",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Перезарядки LoL",
		KeyAddChampion:       "Добавить чемпиона",
		KeyEnterChampion:     "Имя чемпиона (например, Ahri)",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInterface:         "Интерфейс",
		KeyData:              "Data Dragon",
		KeyDataVersion:       "Версия данных",
		KeyConfigFile:        "Файл конфигурации",
		KeyReveal:            "Показать",
		KeyErrorRevealing:    "Ошибка открытия файлового менеджера",
		KeyPleaseEnterName:   "Пожалуйста, введите имя чемпиона",
		KeyAlreadyTracked:    "Чемпион уже добавлен",
		KeyUnknownChampion:   "Неизвестный чемпион",
		KeyDidYouMean:        "может быть",
		KeyLoadingChampion:   "Загрузка чемпиона...",
		KeyDataUnavailable:   "Данные чемпиона недоступны",
		KeyIconsUnavailable:  "Не удалось загрузить некоторые иконки",
		KeyAbilityHaste:      "Ускорение умений",
		KeyCountdownFailed:   "Не удалось запустить перезарядку",
		KeyLevelChangeFailed: "Не удалось изменить уровень умения",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Recargas LoL",
		KeyAddChampion:       "Adicionar Campeão",
		KeyEnterChampion:     "Nome do campeão (ex. Ahri)",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInterface:         "Interface",
		KeyData:              "Data Dragon",
		KeyDataVersion:       "Versão dos dados",
		KeyConfigFile:        "Arquivo de configuração",
		KeyReveal:            "Mostrar",
		KeyErrorRevealing:    "Erro ao abrir o gerenciador de arquivos",
		KeyPleaseEnterName:   "Por favor, digite o nome de um campeão",
		KeyAlreadyTracked:    "Campeão já adicionado",
		KeyUnknownChampion:   "Campeão desconhecido",
		KeyDidYouMean:        "você quis dizer",
		KeyLoadingChampion:   "Carregando campeão...",
		KeyDataUnavailable:   "Dados do campeão indisponíveis",
		KeyIconsUnavailable:  "Alguns ícones não puderam ser carregados",
		KeyAbilityHaste:      "Aceleração de habilidade",
		KeyCountdownFailed:   "Não foi possível iniciar a recarga",
		KeyLevelChangeFailed: "Não foi possível alterar o nível",
	}
}
