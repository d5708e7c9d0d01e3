// Package i18n looks up UI strings from the embedded locale files.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// SupportedLanguages lists the bundled language codes, default first.
var SupportedLanguages = []string{"en"}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(SupportedLanguages))
	for _, code := range SupportedLanguages {
		tags = append(tags, language.Make(code))
	}
	return tags
}

// Init loads the bundle and picks a language.
// Priority: explicit language > LANG > LC_ALL > en.
func Init(configLang string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	if err := loadEmbeddedTranslations(); err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	lang = detectLanguage(configLang)
	localizer = i18n.NewLocalizer(bundle, lang, SupportedLanguages[0])
	return nil
}

func detectLanguage(configLang string) string {
	for _, candidate := range []string{configLang, os.Getenv("LANG"), os.Getenv("LC_ALL")} {
		if candidate != "" {
			return normalizeLanguage(candidate)
		}
	}
	return SupportedLanguages[0]
}

// normalizeLanguage maps a POSIX locale ("en_US.UTF-8") or BCP 47 tag to
// the closest bundled language.
func normalizeLanguage(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return SupportedLanguages[0]
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return SupportedLanguages[0]
	}
	return SupportedLanguages[index]
}

// T translates a message ID. Unknown IDs, or calls before Init, return
// the ID itself.
func T(id string, data ...map[string]any) string {
	if localizer == nil {
		return id
	}

	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 && data[0] != nil {
		cfg.TemplateData = data[0]
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}

var weekdayIDs = [7]string{
	"calendar.weekday.sun",
	"calendar.weekday.mon",
	"calendar.weekday.tue",
	"calendar.weekday.wed",
	"calendar.weekday.thu",
	"calendar.weekday.fri",
	"calendar.weekday.sat",
}

// Weekdays returns the grid column headers, Sunday first.
func Weekdays() []string {
	out := make([]string, len(weekdayIDs))
	for i, id := range weekdayIDs {
		out[i] = T(id)
	}
	return out
}

func CurrentLanguage() string {
	return lang
}

func IsSupported(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
