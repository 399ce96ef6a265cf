package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localizedata embed.FS

// En is the only catalog shipped with the bot
const En = "en"

type Localizer interface {
	MustLocalize(id string) string
	MustLocalizeWithTemplate(id string, fields ...string) string
}

type localizer struct {
	*i18n.Localizer
}

// NewLocalizer loads every embedded catalog into a bundle and returns a localizer for lang
func NewLocalizer(lang string) (Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(localizedata, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list translation files: %w", err)
	}

	for _, f := range files {
		data, err := localizedata.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load translation data: %s", f)
		}

		if _, err := bundle.ParseMessageFileBytes(data, f); err != nil {
			return nil, fmt.Errorf("failed to parse translation data %s: %w", f, err)
		}
	}

	return &localizer{i18n.NewLocalizer(bundle, lang)}, nil
}

func (l *localizer) MustLocalize(id string) string {
	return l.Localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: id,
	})
}

// MustLocalizeWithTemplate fills the message template; fields are exposed as .f1, .f2, ...
func (l *localizer) MustLocalizeWithTemplate(id string, fields ...string) string {
	td := make(map[string]interface{}, len(fields))

	for i, f := range fields {
		td["f"+strconv.Itoa(i+1)] = f
	}

	return l.Localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: td,
	})
}
