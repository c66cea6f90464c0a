package intent

import (
	"strings"
	"unicode"
)

// DefaultSummaryWords caps how many words a synthesized title keeps.
const DefaultSummaryWords = 6

var stopWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		quiero quisiera gustaria me aprender hacer lograr alcanzar terminar completar empezar poder
		un una unos unas el la los las de del al para por en con sobre y a mi mis tu tus su sus que
		leer estudiar practicar
		i want would like to learn do reach finish complete start the an of for in on with about and my your
		read study practice`) {
		stopWords[w] = true
	}
}

// Summarize keeps the first maxWords meaningful words of text, punctuation removed.
func Summarize(text string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultSummaryWords
	}
	var kept []string
	for _, raw := range strings.Fields(text) {
		word := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				return r
			}
			return -1
		}, raw)
		if word == "" || stopWords[Fold(word)] {
			continue
		}
		kept = append(kept, word)
		if len(kept) == maxWords {
			break
		}
	}
	return strings.Join(kept, " ")
}
