package translator

import (
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var (
	supported = []string{LanguageEn}
	matcher   = language.NewMatcher([]language.Tag{language.English})
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	setSupportedLanguages(cfg.SupportedLanguages)

	files, err := filepath.Glob(filepath.Join(cfg.TranslationFolder, "*.toml"))
	if err != nil || len(files) == 0 {
		zap.L().Error("no translation files found", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, file := range files {
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", filepath.Base(file)), zap.Error(err))
		}
	}
}

// Match picks the supported language that best fits an Accept-Language
// header. English is the default; the first listed language wins ties.
func Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return LanguageEn
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	return supported[index]
}

func setSupportedLanguages(languages []string) {
	langs := []string{LanguageEn}
	tags := []language.Tag{language.English}
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil || lang == LanguageEn {
			continue
		}
		langs = append(langs, lang)
		tags = append(tags, tag)
	}
	supported = langs
	matcher = language.NewMatcher(tags)
}
