package supervisor

import (
	"strings"
	"unicode"

	"task-agent/internal/domain/entity"
)

// taskKeywords are the words that pull an utterance toward the task agent.
// Matching is on whole words, case-insensitive, so "I'm listless" does not
// trip on "list".
var taskKeywords = map[string]struct{}{
	"task":      {},
	"tasks":     {},
	"todo":      {},
	"todos":     {},
	"to-do":     {},
	"backlog":   {},
	"bug":       {},
	"bugs":      {},
	"feature":   {},
	"ticket":    {},
	"tickets":   {},
	"priority":  {},
	"deadline":  {},
	"done":      {},
	"complete":  {},
	"completed": {},
	"finish":    {},
	"finished":  {},
	"create":    {},
	"add":       {},
	"list":      {},
	"delete":    {},
	"remove":    {},
	"update":    {},
	"cancel":    {},
	"reminder":  {},
	"remind":    {},
	"suggest":   {},
	"plan":      {},
}

// Route decides which sub-agent handles the utterance. Anything touching the
// task vocabulary goes to the task agent; the rest is general conversation.
func Route(utterance string) entity.AgentType {
	words := strings.FieldsFunc(strings.ToLower(utterance), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})

	for _, word := range words {
		if _, ok := taskKeywords[word]; ok {
			return entity.AgentTypeTasks
		}
	}
	return entity.AgentTypeChat
}
