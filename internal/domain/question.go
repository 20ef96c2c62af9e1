package domain

import "strings"

// QuestionKey reduces a card front to the form used to spot repeated
// questions. It lowercases, collapses whitespace runs (tabs and newlines too)
// to one space and drops trailing question marks. Other punctuation is kept,
// so "What is 2+2?" and "What is 2-2?" stay distinct.
func QuestionKey(front string) string {
	key := strings.Join(strings.Fields(strings.ToLower(front)), " ")
	return strings.TrimSpace(strings.TrimRight(key, "?"))
}
