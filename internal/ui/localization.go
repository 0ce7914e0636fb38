package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyTabSearch       = "tab_search"
	KeyTabQueue        = "tab_queue"
	KeyTabHistory      = "tab_history"
	KeyTabSettings     = "tab_settings"
	KeyTabConsole      = "tab_console"
	KeyLanguage        = "language"
	KeyFile            = "file"
	KeyReloadQueue     = "reload_queue"
	KeySearch          = "search"
	KeySearchHint      = "search_hint"
	KeyNowDownloading  = "now_downloading"
	KeyNextUp          = "next_up"
	KeyFailed          = "failed"
	KeyCompleted       = "completed"
	KeyRetry           = "retry"
	KeyClearHistory    = "clear_history"
	KeyClearConfirm    = "clear_confirm"
	KeyParallel        = "parallel"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyDownloadAll     = "download_all"
	KeyDownloadAllAsk  = "download_all_ask"
	KeyDownloadSel     = "download_selected"
	KeySelectAll       = "select_all"
	KeyLogin           = "login"
	KeyUsername        = "username"
	KeyPassword        = "password"
	KeyVerify          = "verify"
	KeyTwoFactorHint   = "two_factor_hint"
	KeyClientSettings  = "client_settings"
	KeyServerURL       = "server_url"
	KeyDefaultCodec    = "default_codec"
	KeyShowTips        = "show_tips"
	KeyCopyScript      = "copy_script"
	KeySaveScript      = "save_script"
	KeyError           = "error"
	KeyQueued          = "queued"
	KeyQueuedBody      = "queued_body"
	KeyRestartRequired = "restart_required"
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
	if text, found := l.texts["en"][key]; found {
		return text
	}

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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "AMDL Client",
		KeyTabSearch:       "Search",
		KeyTabQueue:        "Queue",
		KeyTabHistory:      "History",
		KeyTabSettings:     "Settings",
		KeyTabConsole:      "Console",
		KeyLanguage:        "Language",
		KeyFile:            "File",
		KeyReloadQueue:     "Reload Queue",
		KeySearch:          "Search",
		KeySearchHint:      "Search songs, albums, artists or paste a music.apple.com link",
		KeyNowDownloading:  "Now Downloading",
		KeyNextUp:          "Next Up",
		KeyFailed:          "Failed",
		KeyCompleted:       "Completed",
		KeyRetry:           "Retry",
		KeyClearHistory:    "Clear History",
		KeyClearConfirm:    "Remove all finished downloads from the history?",
		KeyParallel:        "Parallel",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyDownloadAll:     "Download All",
		KeyDownloadAllAsk:  "Download the whole discography of %s?",
		KeyDownloadSel:     "Download",
		KeySelectAll:       "Select All",
		KeyLogin:           "Login",
		KeyUsername:        "Apple ID",
		KeyPassword:        "Password",
		KeyVerify:          "Verify",
		KeyTwoFactorHint:   "Enter the code sent to your device",
		KeyClientSettings:  "Client",
		KeyServerURL:       "Server URL",
		KeyDefaultCodec:    "Default Codec",
		KeyShowTips:        "Show tips",
		KeyCopyScript:      "Copy Script",
		KeySaveScript:      "Save to File",
		KeyError:           "Error",
		KeyQueued:          "Queued",
		KeyQueuedBody:      "%d items added to the queue.",
		KeyRestartRequired: "Restart the client to connect to the new server.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "AMDL Клиент",
		KeyTabSearch:       "Поиск",
		KeyTabQueue:        "Очередь",
		KeyTabHistory:      "История",
		KeyTabSettings:     "Настройки",
		KeyTabConsole:      "Консоль",
		KeyLanguage:        "Язык",
		KeyFile:            "Файл",
		KeyReloadQueue:     "Обновить очередь",
		KeySearch:          "Найти",
		KeySearchHint:      "Песни, альбомы, артисты или ссылка music.apple.com",
		KeyNowDownloading:  "Сейчас загружается",
		KeyNextUp:          "Далее",
		KeyFailed:          "Ошибки",
		KeyCompleted:       "Завершено",
		KeyRetry:           "Повторить",
		KeyClearHistory:    "Очистить историю",
		KeyClearConfirm:    "Удалить все завершённые загрузки из истории?",
		KeyParallel:        "Параллельно",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyDownloadAll:     "Скачать всё",
		KeyDownloadAllAsk:  "Скачать всю дискографию %s?",
		KeyDownloadSel:     "Скачать",
		KeySelectAll:       "Выбрать все",
		KeyLogin:           "Войти",
		KeyUsername:        "Apple ID",
		KeyPassword:        "Пароль",
		KeyVerify:          "Подтвердить",
		KeyTwoFactorHint:   "Введите код, отправленный на устройство",
		KeyClientSettings:  "Клиент",
		KeyServerURL:       "Адрес сервера",
		KeyDefaultCodec:    "Кодек по умолчанию",
		KeyShowTips:        "Показывать подсказки",
		KeyCopyScript:      "Копировать скрипт",
		KeySaveScript:      "Сохранить в файл",
		KeyError:           "Ошибка",
		KeyQueued:          "В очереди",
		KeyQueuedBody:      "Добавлено в очередь: %d.",
		KeyRestartRequired: "Перезапустите клиент для подключения к новому серверу.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "AMDL Client",
		KeyTabSearch:       "Buscar",
		KeyTabQueue:        "Fila",
		KeyTabHistory:      "Histórico",
		KeyTabSettings:     "Configurações",
		KeyTabConsole:      "Console",
		KeyLanguage:        "Idioma",
		KeyFile:            "Arquivo",
		KeyReloadQueue:     "Recarregar Fila",
		KeySearch:          "Buscar",
		KeySearchHint:      "Músicas, álbuns, artistas ou um link music.apple.com",
		KeyNowDownloading:  "Baixando Agora",
		KeyNextUp:          "A Seguir",
		KeyFailed:          "Falhas",
		KeyCompleted:       "Concluídos",
		KeyRetry:           "Tentar de Novo",
		KeyClearHistory:    "Limpar Histórico",
		KeyClearConfirm:    "Remover todos os downloads concluídos do histórico?",
		KeyParallel:        "Paralelos",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyDownloadAll:     "Baixar Tudo",
		KeyDownloadAllAsk:  "Baixar toda a discografia de %s?",
		KeyDownloadSel:     "Baixar",
		KeySelectAll:       "Selecionar Todos",
		KeyLogin:           "Entrar",
		KeyUsername:        "Apple ID",
		KeyPassword:        "Senha",
		KeyVerify:          "Verificar",
		KeyTwoFactorHint:   "Digite o código enviado ao seu dispositivo",
		KeyClientSettings:  "Cliente",
		KeyServerURL:       "URL do Servidor",
		KeyDefaultCodec:    "Codec Padrão",
		KeyShowTips:        "Mostrar dicas",
		KeyCopyScript:      "Copiar Script",
		KeySaveScript:      "Salvar em Arquivo",
		KeyError:           "Erro",
		KeyQueued:          "Na Fila",
		KeyQueuedBody:      "%d itens adicionados à fila.",
		KeyRestartRequired: "Reinicie o cliente para conectar ao novo servidor.",
	}
}

// Tips rotated in the status bar
var Tips = []string{
	"Paste a music.apple.com link into search to queue it directly.",
	"Click an artist to browse the full discography.",
	"Select several releases in the artist view and download them at once.",
	"Failed downloads can be retried from the History tab.",
	"Raise the parallel limit on the Queue tab to download faster.",
	"Open the Console tab to follow the backend log live.",
	"Album cards in the history expand to show every track.",
}
