package generator

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTagger is a mock implementation of Tagger
type MockTagger struct {
	mock.Mock
}

func (m *MockTagger) PlaceNames(text string) ([]string, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTagger) Keywords(text string) ([]string, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestCityExtractorExtract(t *testing.T) {
	t.Run("First place name wins", func(t *testing.T) {
		tagger := new(MockTagger)
		tagger.On("PlaceNames", "I want to visit paris and london").
			Return([]string{"paris", "london"}, nil)

		e := NewCityExtractor(tagger, testLogger())
		assert.Equal(t, "Paris", e.Extract(" I want to visit paris and london "))
		tagger.AssertExpectations(t)
	})

	t.Run("Falls back to trimmed title-cased input", func(t *testing.T) {
		tagger := new(MockTagger)
		tagger.On("PlaceNames", "san francisco").Return([]string{}, nil)

		e := NewCityExtractor(tagger, testLogger())
		assert.Equal(t, "San Francisco", e.Extract("  san francisco  "))
	})

	t.Run("Tagging errors degrade to the fallback", func(t *testing.T) {
		tagger := new(MockTagger)
		tagger.On("PlaceNames", "tokyo").Return(nil, assert.AnError)

		e := NewCityExtractor(tagger, testLogger())
		assert.Equal(t, "Tokyo", e.Extract("tokyo"))
	})

	t.Run("Already canonical input is unchanged", func(t *testing.T) {
		tagger := new(MockTagger)
		tagger.On("PlaceNames", "London").Return([]string{"London"}, nil)

		e := NewCityExtractor(tagger, testLogger())
		assert.Equal(t, "London", e.Extract("London"))
	})
}

func TestProseTaggerKeywords(t *testing.T) {
	tagger := NewProseTagger()

	keywords, err := tagger.Keywords("beautiful parks")
	assert.NoError(t, err)
	assert.Contains(t, keywords, "parks")
}
