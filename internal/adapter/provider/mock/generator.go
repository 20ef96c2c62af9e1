// Package mock provides an offline card generator that builds cards from
// the sentences of the input text. It needs no credentials and always
// returns the same cards for the same text.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	minSentenceLen = 20
	termMinLen     = 6
	snippetLen     = 30
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	copulaSubject = regexp.MustCompile(`(?i)^(\w+)\s+(is|are)\s+`)
	categories    = []string{"Concept", "Definition", "Process", "Example", "Fact"}
)

type card struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

// Generator implements the card generator without calling a model.
type Generator struct{}

// New creates a mock Generator.
func New() *Generator { return &Generator{} }

// GenerateCards returns a JSON array of cards, one per sentence longer than
// twenty characters, up to maxCards.
func (g *Generator) GenerateCards(ctx context.Context, text string, maxCards int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cards := []card{}
	for _, s := range sentenceSplit.Split(text, -1) {
		if maxCards > 0 && len(cards) == maxCards {
			break
		}
		s = strings.Join(strings.Fields(s), " ")
		if len(s) <= minSentenceLen {
			continue
		}
		cards = append(cards, card{
			Front:    question(s),
			Back:     s,
			Category: categories[len(cards)%len(categories)],
		})
	}

	out, err := json.Marshal(cards)
	if err != nil {
		return "", fmt.Errorf("encode cards: %w", err)
	}
	return string(out), nil
}

func question(sentence string) string {
	if terms := keyTerms(sentence, 2); len(terms) > 0 {
		return "What is the significance of " + strings.Join(terms, " and ") + "?"
	}
	if copulaSubject.MatchString(sentence) {
		return copulaSubject.ReplaceAllString(sentence, "What $2 ") + "?"
	}
	snippet := sentence
	if len(snippet) > snippetLen {
		snippet = snippet[:snippetLen]
	}
	return fmt.Sprintf("What does the following statement explain: %q...?", snippet)
}

// keyTerms returns up to n words of at least termMinLen letters, in order.
func keyTerms(sentence string, n int) []string {
	var terms []string
	for _, w := range strings.Fields(sentence) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if len([]rune(w)) < termMinLen {
			continue
		}
		terms = append(terms, w)
		if len(terms) == n {
			break
		}
	}
	return terms
}
