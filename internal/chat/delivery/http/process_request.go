package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXSessionKey carries the conversation session key. When the client
// sends none, a fresh key is issued and returned in the response so the next
// turn can continue the conversation.
const HeaderXSessionKey = "X-Session-Key"

// processProcessReq binds and validates the chat turn request.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, errWrongBody
	}

	req.sessionKey = c.GetHeader(HeaderXSessionKey)
	if req.sessionKey == "" {
		req.sessionKey = uuid.NewString()
	}
	return req, nil
}
