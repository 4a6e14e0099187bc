package generator

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Tagger provides the lexical analysis behind city extraction and criteria
// keyword expansion. Implementations are stateless and synchronous.
type Tagger interface {
	// PlaceNames returns the place-name entities found in text, in order.
	PlaceNames(text string) ([]string, error)
	// Keywords returns the lower-cased nouns and adjectives found in text.
	Keywords(text string) ([]string, error)
}

var _ Tagger = (*ProseTagger)(nil)

// ProseTagger tags text with the prose NLP pipeline. No network dependency.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (t *ProseTagger) PlaceNames(text string) ([]string, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	var places []string
	for _, ent := range doc.Entities() {
		if ent.Label == "GPE" {
			places = append(places, ent.Text)
		}
	}
	return places, nil
}

func (t *ProseTagger) Keywords(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	var keywords []string
	for _, tok := range doc.Tokens() {
		// Penn Treebank: NN* nouns, JJ* adjectives
		if strings.HasPrefix(tok.Tag, "NN") || strings.HasPrefix(tok.Tag, "JJ") {
			keywords = append(keywords, strings.ToLower(tok.Text))
		}
	}
	return keywords, nil
}
