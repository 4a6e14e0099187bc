package generator

import (
	"fmt"
	"log/slog"
	"strings"
)

// maxCandidates caps the candidate-name set handed to enrichment.
const maxCandidates = 15

// curatedAttractions maps well-known city substrings to hand-authored
// landmark lists. Matching is case-insensitive substring on the canonical
// city name; first matching entry wins.
var curatedAttractions = []struct {
	substrings []string
	names      []string
}{
	{
		substrings: []string{"london"},
		names: []string{
			"Buckingham Palace",
			"Big Ben",
			"London Eye",
			"Tower Bridge",
			"British Museum",
			"Westminster Abbey",
			"Hyde Park",
			"Tower of London",
			"St. Paul's Cathedral",
			"Covent Garden",
		},
	},
	{
		substrings: []string{"paris"},
		names: []string{
			"Eiffel Tower",
			"Louvre Museum",
			"Notre-Dame Cathedral",
			"Arc de Triomphe",
			"Champs-Élysées",
			"Montmartre",
			"Seine River",
			"Musée d'Orsay",
		},
	},
	{
		substrings: []string{"singapore"},
		names: []string{
			"Marina Bay Sands",
			"Gardens by the Bay",
			"Sentosa Island",
			"Singapore Zoo",
			"Universal Studios Singapore",
			"Merlion Park",
			"Orchard Road",
			"Chinatown",
		},
	},
	{
		substrings: []string{"tokyo"},
		names: []string{
			"Tokyo Skytree",
			"Senso-ji Temple",
			"Shibuya Crossing",
			"Meiji Shrine",
			"Tsukiji Market",
			"Tokyo Tower",
			"Imperial Palace",
			"Harajuku",
		},
	},
	{
		substrings: []string{"new york", "nyc"},
		names: []string{
			"Statue of Liberty",
			"Central Park",
			"Times Square",
			"Empire State Building",
			"Brooklyn Bridge",
			"Metropolitan Museum of Art",
			"Broadway",
			"High Line",
		},
	},
	{
		substrings: []string{"sydney"},
		names: []string{
			"Sydney Opera House",
			"Sydney Harbour Bridge",
			"Bondi Beach",
			"Royal Botanic Gardens",
			"Taronga Zoo",
			"The Rocks",
			"Darling Harbour",
		},
	},
}

// NameSynthesizer combines curated landmark lists, generic place-name
// patterns and criteria-driven keyword expansion into a deduplicated
// candidate set. It never fails; tagging errors only skip the criteria
// expansion step.
type NameSynthesizer struct {
	logger *slog.Logger
	tagger Tagger
}

func NewNameSynthesizer(tagger Tagger, logger *slog.Logger) *NameSynthesizer {
	return &NameSynthesizer{
		logger: logger,
		tagger: tagger,
	}
}

// Synthesize returns at most maxCandidates attraction names for city.
// Candidates are collected curated-first, then criteria expansion, then
// generic patterns; duplicates keep their first position and truncation is
// deterministic over that order. Criteria expansion runs ahead of the
// generic patterns so its names are never squeezed out by the cap.
func (s *NameSynthesizer) Synthesize(city, criteria string) []string {
	var (
		candidates []string
		seen       = make(map[string]bool)
	)
	add := func(names ...string) {
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				candidates = append(candidates, name)
			}
		}
	}

	add(s.citySpecificAttractions(city)...)
	if criteria != "" {
		add(s.criteriaExpansion(city, criteria)...)
	}
	add(s.genericPatterns(city)...)

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

func (s *NameSynthesizer) genericPatterns(city string) []string {
	return []string{
		fmt.Sprintf("%s Museum", city),
		fmt.Sprintf("%s Cathedral", city),
		fmt.Sprintf("%s Park", city),
		fmt.Sprintf("%s Tower", city),
		fmt.Sprintf("%s Palace", city),
		fmt.Sprintf("%s Bridge", city),
		fmt.Sprintf("%s Market", city),
		fmt.Sprintf("%s Square", city),
		fmt.Sprintf("%s Gardens", city),
		fmt.Sprintf("%s Zoo", city),
	}
}

// criteriaExpansion tags the lower-cased criteria and adds themed name sets
// when the tagged keywords contain the matching trigger words. These are
// plain presence checks, not semantic matches.
func (s *NameSynthesizer) criteriaExpansion(city, criteria string) []string {
	keywords, err := s.tagger.Keywords(strings.ToLower(criteria))
	if err != nil {
		s.logger.Debug("Criteria tagging failed, skipping expansion", slog.Any("error", err))
		return nil
	}

	tagged := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		tagged[kw] = true
	}

	var names []string
	if tagged["cultural"] || tagged["culture"] {
		names = append(names,
			fmt.Sprintf("%s Museum", city),
			fmt.Sprintf("%s Art Gallery", city),
			fmt.Sprintf("%s Cathedral", city),
			fmt.Sprintf("%s Historical Center", city),
		)
	}
	if tagged["nature"] || tagged["park"] {
		names = append(names,
			fmt.Sprintf("%s Central Park", city),
			fmt.Sprintf("%s Botanical Gardens", city),
			fmt.Sprintf("%s Nature Reserve", city),
		)
	}
	if tagged["entertainment"] || tagged["fun"] {
		names = append(names,
			fmt.Sprintf("%s Theme Park", city),
			fmt.Sprintf("%s Entertainment District", city),
			fmt.Sprintf("%s Observation Deck", city),
		)
	}
	return names
}

// citySpecificAttractions returns the curated landmark list for well-known
// cities, or a generic fallback set for everywhere else.
func (s *NameSynthesizer) citySpecificAttractions(city string) []string {
	cityLower := strings.ToLower(city)
	for _, entry := range curatedAttractions {
		for _, sub := range entry.substrings {
			if strings.Contains(cityLower, sub) {
				return entry.names
			}
		}
	}
	return []string{
		fmt.Sprintf("%s City Center", city),
		fmt.Sprintf("%s Main Square", city),
		fmt.Sprintf("%s Historical District", city),
		fmt.Sprintf("%s Central Park", city),
		fmt.Sprintf("%s Museum", city),
		fmt.Sprintf("%s Cathedral", city),
		fmt.Sprintf("%s Market", city),
		fmt.Sprintf("%s Observation Point", city),
	}
}
