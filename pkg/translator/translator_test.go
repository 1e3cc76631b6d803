package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"tasktracker/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
)

func TestInitTranslator_LoadsEmbeddedCatalogs(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	require.Equal(t, "Task not found", translator.Localize("taskNotFound", translator.LanguageEn))
	require.Equal(t, "Tâche introuvable", translator.Localize("taskNotFound", translator.LanguageFr))
	require.Equal(t, "Statut invalide", translator.Localize("invalidStatus", "fr-FR,fr;q=0.9,en;q=0.8"))
}

func TestInitTranslator_LoadsMessagesFromFolder(t *testing.T) {
	dir := t.TempDir()

	enFile := filepath.Join(dir, "en.toml")
	content := []byte(`
hello = "Hello english"
`)
	require.NoError(t, os.WriteFile(enFile, content, 0o644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Hello english", msg)
}

func TestInitTranslator_SkipsUnsupportedLanguages(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn},
	})

	require.Equal(t, "Task not found", translator.Localize("taskNotFound", translator.LanguageFr))
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})

	require.Equal(t, "taskNotFound", translator.Localize("taskNotFound", translator.LanguageEn))
}

func TestLocalize_FallsBackToKey(t *testing.T) {
	translator.InitTranslator(translator.Config{})

	require.Equal(t, "unknownKey", translator.Localize("unknownKey", translator.LanguageEn))
}
