package usecase

import (
	"context"
	"fmt"
	"strings"

	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/intent"
	"ess-chatbot/internal/model"
	"ess-chatbot/pkg/gemini"
)

const (
	replyTemperature    = 0.4
	fallbackTemperature = 0.7
)

// businessReply answers a routed intent from the static facts table. When a
// responder is wired, it phrases the reply around the facts; a responder
// failure degrades to the canned template.
func (uc *implUseCase) businessReply(ctx context.Context, sc model.Scope, it *intent.Intent, query string, score float64) chat.Reply {
	facts, canned := uc.factsFor(it, sc)

	message := canned
	if uc.responder != nil {
		prompt := gemini.BuildChatReplyPrompt(it.Name, sc.Name, query, facts)
		text, err := uc.responder.GenerateText(ctx, prompt, replyTemperature)
		if err != nil {
			uc.l.Warnf(ctx, "chat.businessReply.GenerateText: %v", err)
		} else if strings.TrimSpace(text) != "" {
			message = strings.TrimSpace(text)
		}
	}

	return chat.Reply{
		Success:    true,
		IntentID:   it.ID,
		IntentName: it.Name,
		Confidence: score,
		Message:    message,
	}
}

// fallback answers a detection miss. The responder failure path degrades to
// the canned fallback so a turn never errors because of the LLM.
func (uc *implUseCase) fallback(ctx context.Context, query string, score float64) chat.Reply {
	message := chat.MsgFallback
	if uc.responder != nil {
		text, err := uc.responder.GenerateText(ctx, gemini.BuildFallbackPrompt(query), fallbackTemperature)
		if err != nil {
			uc.l.Warnf(ctx, "chat.fallback.GenerateText: %v", err)
		} else if strings.TrimSpace(text) != "" {
			message = strings.TrimSpace(text)
		}
	}
	return chat.Reply{Confidence: score, Message: message}
}

// factsFor returns the demo facts table and canned template per intent.
// A real deployment replaces this with HRIS lookups.
func (uc *implUseCase) factsFor(it *intent.Intent, sc model.Scope) (map[string]string, string) {
	name := sc.Name
	if name == "" {
		name = "there"
	}

	switch it.ID {
	case "GREETING":
		return nil, fmt.Sprintf("👋 Hello %s! How can I help you today? Type /help to see what I can do.", name)
	case "COMPANY_HOLIDAYS":
		facts := map[string]string{
			"next_holiday":    "Independence Day, Sep 2",
			"holidays_policy": "12 public holidays per year",
		}
		return facts, "📅 The next company holiday is Independence Day on Sep 2. TechCorp observes 12 public holidays per year."
	case "WORKING_HOURS":
		facts := map[string]string{
			"core_hours": "Mon–Fri 09:00–18:00",
			"lunch":      "12:00–13:00",
		}
		return facts, "🕘 Standard working hours are Monday to Friday, 09:00–18:00, with lunch from 12:00 to 13:00."
	case "LEAVE_BALANCE":
		facts := map[string]string{
			"annual_leave_days": "12",
			"sick_leave_days":   "5",
		}
		return facts, fmt.Sprintf("🌴 %s, you have 12 annual leave days and 5 sick leave days remaining this year.", name)
	case "PAYSLIP":
		facts := map[string]string{
			"latest_payslip": "August 2026",
			"portal":         "payroll.techcorp.example",
		}
		return facts, fmt.Sprintf("💰 %s, your latest payslip (August 2026) is available on payroll.techcorp.example.", name)
	default:
		return nil, fmt.Sprintf("I recognized your request as %q but have no details wired for it yet.", it.Name)
	}
}

func joinNames(intents []intent.Intent) string {
	names := make([]string, len(intents))
	for i, it := range intents {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}
