package generator

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CityExtractor normalizes a raw free-text destination string into a
// canonical place name. It never fails: tagging errors and tag-less input
// both degrade to the trimmed, title-cased input.
type CityExtractor struct {
	logger *slog.Logger
	tagger Tagger
}

func NewCityExtractor(tagger Tagger, logger *slog.Logger) *CityExtractor {
	return &CityExtractor{
		logger: logger,
		tagger: tagger,
	}
}

// Extract returns the canonical city name for raw. The leftmost place-name
// entity wins; otherwise the whole trimmed input is used.
func (e *CityExtractor) Extract(raw string) string {
	trimmed := strings.TrimSpace(raw)
	name := trimmed

	places, err := e.tagger.PlaceNames(trimmed)
	if err != nil {
		e.logger.Debug("Place-name tagging failed, using raw input", slog.Any("error", err))
	} else if len(places) > 0 {
		name = places[0]
	}

	return cases.Title(language.English).String(name)
}
