package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert in analyzing social issues. You are given a civic complaint, similar complaints already on record for the same location, and relevant news articles. Analyze them together.

Please provide:
1. Possible reasons for this issue.
2. Suggested solutions.
3. Additional recommendations.`

func buildUserPrompt(input SummaryInput) string {
	return fmt.Sprintf(`A complaint about %q was received in %s.
Below is relevant information:

- **Database complaints**: %s
- **Relevant News Articles**:
  %s`,
		input.Problem, input.Location,
		formatComplaints(input.Complaints),
		renderNewsList(input.News),
	)
}

func formatComplaints(complaints []ComplaintContext) string {
	if len(complaints) == 0 {
		return "None found"
	}

	lines := make([]string, len(complaints))
	for i, c := range complaints {
		line := fmt.Sprintf("%s (similarity %d): %s", c.Location, c.Similarity, c.Text)
		if c.Category != "" {
			line += fmt.Sprintf(" [%s]", c.Category)
		}
		lines[i] = line
	}
	return strings.Join(lines, "; ")
}

func renderNewsList(news []NewsContext) string {
	if len(news) == 0 {
		return "No relevant news found"
	}

	lines := make([]string, len(news))
	for i, n := range news {
		lines[i] = fmt.Sprintf("- **%s**: %s ([Source](%s))", n.Title, n.Snippet, n.Link)
	}
	return strings.Join(lines, "\n")
}
