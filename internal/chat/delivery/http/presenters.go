package http

import (
	"ess-chatbot/internal/chat"
)

// --- Request DTOs ---

type processReq struct {
	Message string `json:"message" binding:"required,max=2000"`

	sessionKey string // from header, issued when absent
}

func (r processReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{
		SessionKey: r.sessionKey,
		Text:       r.Message,
	}
}

// --- Response DTOs ---

type processResp struct {
	SessionKey   string  `json:"session_key"`
	Success      bool    `json:"success"`
	IntentID     string  `json:"intent_id,omitempty"`
	IntentName   string  `json:"intent_name,omitempty"`
	Confidence   float64 `json:"confidence"`
	Message      string  `json:"message"`
	RequiresAuth bool    `json:"requires_auth,omitempty"`
}

func (h *handler) newProcessResp(sessionKey string, out chat.Reply) processResp {
	return processResp{
		SessionKey:   sessionKey,
		Success:      out.Success,
		IntentID:     out.IntentID,
		IntentName:   out.IntentName,
		Confidence:   out.Confidence,
		Message:      out.Message,
		RequiresAuth: out.RequiresAuth,
	}
}

type intentResp struct {
	ID        string `json:"intent_id"`
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

type intentsResp struct {
	General []intentResp `json:"general"`
	Private []intentResp `json:"private"`
}

func (h *handler) newIntentsResp(out chat.IntentListing) intentsResp {
	return intentsResp{
		General: newIntentResps(out.General),
		Private: newIntentResps(out.Private),
	}
}

func newIntentResps(in []chat.IntentSummary) []intentResp {
	out := make([]intentResp, len(in))
	for i, it := range in {
		out[i] = intentResp{ID: it.ID, Name: it.Name, IsPrivate: it.IsPrivate}
	}
	return out
}
