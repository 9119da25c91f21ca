package portal

import (
	"strings"

	"golang.org/x/text/language"
)

// HTMLLang turns locale identifiers such as "en_GB" into the BCP 47 form used
// by the html lang attribute. Unparseable input falls back to English.
func HTMLLang(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))

	if err != nil || tag == language.Und {
		return language.English.String()
	}

	return tag.String()
}
