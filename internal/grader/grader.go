package grader

import (
	"fmt"
	"strings"
	"unicode"

	"test-service/internal/models"
)

// Grade scores one set of submitted answers against a test's question list.
// Answers are positional: answers[i] belongs to questions[i]. A missing or
// nil entry counts as an empty response; entries beyond len(questions) are
// ignored. Grade has no side effects.
//
// mcq answers must match the stored option string exactly. fill answers are
// compared after normalization. long questions, and any type the grader does
// not recognize, are left for manual grading: they award nothing and do not
// count toward maxAuto.
func Grade(questions []models.Question, answers []any) (score, maxAuto float64, results []models.QuestionResult) {
	results = make([]models.QuestionResult, 0, len(questions))
	for i, q := range questions {
		var raw any
		if i < len(answers) {
			raw = answers[i]
		}
		item := models.QuestionResult{
			Index:    i,
			Type:     q.Type,
			Marks:    q.Marks,
			Response: raw,
		}
		switch q.Type {
		case "mcq":
			maxAuto += q.Marks
			correct := exactMatch(raw, q.Answer)
			item.Correct = &correct
			if correct {
				item.Awarded = q.Marks
			}
		case "fill":
			maxAuto += q.Marks
			correct := normalize(raw) == normalize(q.Answer)
			item.Correct = &correct
			if correct {
				item.Awarded = q.Marks
			}
		}
		score += item.Awarded
		results = append(results, item)
	}
	return score, maxAuto, results
}

// exactMatch is the mcq rule: case- and whitespace-sensitive equality with
// the stored option string. An absent answer compares as the empty string; a
// non-string answer can never equal a stored option.
func exactMatch(raw any, want string) bool {
	switch v := raw.(type) {
	case nil:
		return want == ""
	case string:
		return v == want
	default:
		return false
	}
}

// normalize coerces a raw answer to a string, trims it, strips every run of
// whitespace and lowercases it, so "  Pa ris " and "paris" compare equal.
func normalize(raw any) string {
	var s string
	switch v := raw.(type) {
	case nil:
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
