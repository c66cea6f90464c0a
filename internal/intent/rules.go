package intent

import (
	"regexp"
	"strings"

	"pacekeeper/internal/model"
)

// Rule maps a predicate over folded text to a category.
type Rule struct {
	Category model.GoalType
	Match    func(folded string) bool
}

// Rules are evaluated in order; the first match wins.
var Rules = []Rule{
	{Category: model.GoalTypeReading, Match: anyOf(
		contains("leer", "libro", "novela", "autor"),
		words("read", "reading", "book", "novel", "author"),
	)},
	{Category: model.GoalTypeFitness, Match: anyOf(
		contains("correr", "caminar", "km", "entrenar"),
		words("run", "running", "walk", "walking", "train", "training", "gym"),
	)},
	{Category: model.GoalTypeStudy, Match: anyOf(
		contains("estudiar", "examen", "curso", "clase"),
		words("study", "exam", "course", "class"),
	)},
	{Category: model.GoalTypeHabit, Match: anyOf(
		contains("cada dia", "todos los dias", "habito"),
		words("habit", "daily"),
		contains("every day"),
	)},
}

// Classify returns the category of the first matching rule, or generic.
func Classify(text string) model.GoalType {
	folded := Fold(text)
	for _, r := range Rules {
		if r.Match(folded) {
			return r.Category
		}
	}
	return model.GoalTypeGeneric
}

func contains(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, k := range keywords {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

func words(keywords ...string) func(string) bool {
	re := regexp.MustCompile(`\b(?:` + strings.Join(keywords, "|") + `)\b`)
	return re.MatchString
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}
