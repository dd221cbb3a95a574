package userinteraction

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

type ConsoleUserInteraction struct {
	reader *bufio.Reader
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(os.Stdin),
	}
}

func (u *ConsoleUserInteraction) ReadUtterance(ctx context.Context) (string, error) {
	bold := color.New(color.Bold)
	bold.Print("\n> ")

	line, err := u.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (u *ConsoleUserInteraction) ShowRouting(ctx context.Context, agent entity.AgentType) {
	cyan := color.New(color.FgCyan, color.Bold)
	switch agent {
	case entity.AgentTypeTasks:
		cyan.Println("\n━━━ Task agent ━━━")
	case entity.AgentTypeChat:
		cyan.Println("\n━━━ Chat agent ━━━")
	default:
		cyan.Printf("\n━━━ %s ━━━\n", agent)
	}
}

func (u *ConsoleUserInteraction) ShowToolStart(ctx context.Context, toolName, arguments string) {
	icon, name := getToolDisplay(toolName)

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n%s %s\n", icon, name)

	summary := formatToolArguments(toolName, arguments)
	if summary != "" {
		dim := color.New(color.Faint)
		dim.Printf("   %s\n", summary)
	}
}

func (u *ConsoleUserInteraction) ShowToolResult(ctx context.Context, toolName, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Print("❌ Error: ")

		dim := color.New(color.Faint)
		dim.Println(truncate(strings.TrimPrefix(result, "Error: "), 300))
		return
	}

	text := result
	if env, ok := entity.ParseEnvelope(result); ok {
		text = env.Text
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", truncate(text, 100))
}

func (u *ConsoleUserInteraction) ShowResponse(ctx context.Context, resp *entity.StructuredResponse) {
	fmt.Println()
	fmt.Println(resp.Text)

	for _, ui := range resp.UI {
		switch ui.Name {
		case entity.UITaskCard:
			renderTaskCard(ui.Props)
		case entity.UITaskTable:
			renderTaskTable(ui.Props)
		case entity.UITaskSuggestions:
			renderSuggestions(ui.Props)
		}
	}

	if len(resp.Suggestions) > 0 {
		dim := color.New(color.Faint)
		dim.Printf("\nYou could ask: %s\n", strings.Join(resp.Suggestions, " · "))
	}
}

func renderTaskCard(props map[string]interface{}) {
	task, ok := props["task"].(map[string]interface{})
	if !ok {
		return
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	fmt.Println()
	bold.Printf("  %s\n", str(task["title"]))
	dim.Printf("  %s · %s · %s · %s\n",
		str(task["id"]), str(task["status"]), str(task["label"]), str(task["priority"]))
	if desc := str(task["description"]); desc != "" {
		fmt.Printf("  %s\n", truncate(desc, 120))
	}
}

func renderTaskTable(props map[string]interface{}) {
	tasks, ok := props["tasks"].([]interface{})
	if !ok || len(tasks) == 0 {
		return
	}

	dim := color.New(color.Faint)
	fmt.Println()
	for _, raw := range tasks {
		task, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		fmt.Printf("  • %s", str(task["title"]))
		dim.Printf("  (%s, %s, %s)\n", str(task["status"]), str(task["priority"]), str(task["id"]))
	}
}

func renderSuggestions(props map[string]interface{}) {
	suggestions, ok := props["suggestions"].([]interface{})
	if !ok || len(suggestions) == 0 {
		return
	}

	fmt.Println()
	for i, raw := range suggestions {
		suggestion, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		fmt.Printf("  %d. %s", i+1, str(suggestion["title"]))
		dim := color.New(color.Faint)
		dim.Printf("  [%s/%s]\n", str(suggestion["label"]), str(suggestion["priority"]))
	}
}

func getToolDisplay(toolName string) (string, string) {
	displays := map[string][2]string{
		"task_create":  {"➕", "Create task"},
		"task_list":    {"📋", "List tasks"},
		"task_get":     {"🔍", "Look up task"},
		"task_update":  {"✏️", "Update task"},
		"task_delete":  {"🗑️", "Delete task"},
		"task_suggest": {"💡", "Suggest tasks"},
	}

	if display, ok := displays[toolName]; ok {
		return display[0], display[1]
	}
	return "🔧", toolName
}

func formatToolArguments(toolName, arguments string) string {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ""
	}

	switch toolName {
	case "task_create":
		if title, ok := args["title"].(string); ok {
			return truncate(title, 80)
		}

	case "task_list":
		parts := []string{}
		for _, key := range []string{"status", "label", "priority"} {
			if v, ok := args[key].(string); ok && v != "" {
				parts = append(parts, fmt.Sprintf("%s=%s", key, v))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}

	case "task_get", "task_delete":
		if id, ok := args["id"].(string); ok {
			return fmt.Sprintf("ID: %s", id)
		}

	case "task_update":
		if id, ok := args["id"].(string); ok {
			changes := []string{}
			for key, v := range args {
				if key == "id" {
					continue
				}
				if s, ok := v.(string); ok {
					changes = append(changes, fmt.Sprintf("%s→%s", key, truncate(s, 30)))
				}
			}
			if len(changes) > 0 {
				return fmt.Sprintf("ID: %s (%s)", id, strings.Join(changes, ", "))
			}
			return fmt.Sprintf("ID: %s", id)
		}

	case "task_suggest":
		if goal, ok := args["goal"].(string); ok {
			return truncate(goal, 80)
		}
	}

	return ""
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
