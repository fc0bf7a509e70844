package ai

import (
	"fmt"
	"strings"

	"datachat/dataset"
	"datachat/models"
)

// BuildAnalysisPrompt constructs the plan-resolution prompt from the
// user's question, the dataset profile and the recent conversation.
func BuildAnalysisPrompt(question string, profile []dataset.ColumnProfile, rowCount int, history []models.ChatHistory) string {
	var b strings.Builder

	b.WriteString("You are a data analysis assistant. The user has uploaded a dataset and asks questions about it.\n")
	b.WriteString("You do NOT compute anything yourself. You translate the question into operations that a local statistics engine will run.\n\n")

	b.WriteString(fmt.Sprintf("--- Dataset (%d rows) ---\n", rowCount))
	for _, col := range profile {
		samples := make([]string, 0, len(col.SampleValues))
		for _, v := range col.SampleValues {
			samples = append(samples, fmt.Sprintf("%v", v))
		}
		b.WriteString(fmt.Sprintf("- %s (%s), sample values: %s\n", col.Name, col.Type, strings.Join(samples, ", ")))
	}

	if len(history) > 0 {
		b.WriteString("\n--- Recent conversation ---\n")
		for _, turn := range history {
			b.WriteString(fmt.Sprintf("user: %s\nassistant: %s\n", turn.Message, turn.Response))
		}
	}

	b.WriteString("\n--- User Question ---\n")
	b.WriteString(question)
	b.WriteString("\n\n")

	b.WriteString("Reply with ONLY a JSON object of this shape, no markdown, no code fences, no explanation:\n")
	b.WriteString(`{"answer":"short conversational reply","operations":[{"operation":"mean","field":"ColumnName","field2":"","group_by":"","filters":[{"field":"ColumnName","operator":"==","value":"x"}]}],"chart_spec":{...},"description":"one line describing the results"}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("1. \"operation\" must be one of: count, mean, median, sum, min, max, correlation.\n")
	b.WriteString("2. Every field, group_by and filter field must be a column name from the dataset listing above. Never invent columns.\n")
	b.WriteString("3. correlation needs \"field2\" as the second numeric column. No other operation uses field2.\n")
	b.WriteString("4. Use \"group_by\" when the user asks for a breakdown per category (for example per origin, per region, per year).\n")
	b.WriteString("5. Filter operators are ==, !=, >, <, >=, <=. Combine multiple conditions as multiple filters; they all have to hold.\n")
	b.WriteString("6. Include \"chart_spec\" ONLY when the user asks to see, plot, draw or visualize something. It must be a Vega-Lite spec with \"$schema\":\"https://vega.github.io/schema/vega-lite/v5.json\", a \"mark\" and an \"encoding\" whose channels (x, y, color, size, shape) bind \"field\" names from the dataset with their \"type\". Do not include a \"data\" block; the server attaches the data.\n")
	b.WriteString("7. For questions about the dataset itself (what columns exist, what the data looks like) or general conversation, answer in \"answer\" and leave operations and chart_spec out.\n")
	b.WriteString("8. Keep \"answer\" short; the engine's numbers, not your text, are the source of truth.\n")

	return b.String()
}
