package prompts

import (
	_ "embed"
)

//go:embed tasks.txt
var TasksPrompt string

//go:embed chat.txt
var ChatPrompt string

//go:embed titles.txt
var TitlesPrompt string

//go:embed suggestions.txt
var SuggestionsPrompt string

//go:embed breakdown.txt
var BreakdownPrompt string
