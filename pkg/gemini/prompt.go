package gemini

import (
	"fmt"
	"strings"
)

// BuildChatReplyPrompt builds the prompt for phrasing an HR self-service reply.
// Facts are pre-resolved key/value pairs the model must not contradict or extend.
func BuildChatReplyPrompt(intentName, userName, query string, facts map[string]string) string {
	var sb strings.Builder

	sb.WriteString("You are the assistant of an internal HR self-service chatbot for TechCorp.\n")
	sb.WriteString("Write a short, friendly reply to the employee. Do not invent data: ")
	sb.WriteString("only use the facts provided below. Plain text, no markdown.\n\n")

	if userName != "" {
		sb.WriteString(fmt.Sprintf("Employee name: %s\n", userName))
	}
	sb.WriteString(fmt.Sprintf("Detected topic: %s\n", intentName))
	sb.WriteString(fmt.Sprintf("Employee message: %q\n", query))

	if len(facts) > 0 {
		sb.WriteString("\nFacts:\n")
		for k, v := range facts {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", k, v))
		}
	}

	return sb.String()
}

// BuildFallbackPrompt builds the prompt used when no intent cleared the threshold.
func BuildFallbackPrompt(query string) string {
	return fmt.Sprintf(
		"You are the assistant of an internal HR self-service chatbot for TechCorp.\n"+
			"The employee asked something outside the supported topics. Reply briefly and "+
			"politely, point them to /help for the supported commands, and do not invent "+
			"company data.\n\nEmployee message: %q", query)
}
