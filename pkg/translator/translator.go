package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the catalogs compiled into the binary.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var (
		fsys fs.FS = embedded
		dir        = "translation"
	)
	if cfg.TranslationFolder != "" {
		fsys = os.DirFS(cfg.TranslationFolder)
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !isSupported(entry.Name(), cfg.SupportedLanguages) {
			continue
		}
		if _, err := Translator.LoadMessageFileFS(fsys, path.Join(dir, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}

// Localize returns the message for msgKey in lang, falling back to English
// and then to the key itself.
func Localize(msgKey string, lang string) string {
	if Translator == nil {
		return msgKey
	}
	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

// An empty list accepts every catalog.
func isSupported(fileName string, languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	tag := fileName[:len(fileName)-len(path.Ext(fileName))]
	for _, lang := range languages {
		if tag == lang {
			return true
		}
	}
	return false
}
