package http

import (
	"github.com/gin-gonic/gin"

	"ess-chatbot/pkg/response"
)

// Process godoc
// @Summary     Process one chat turn
// @Description Routes the user text to commands, a pending flow, or intent detection and returns the bot reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-Key header string     false "Conversation session key (issued when absent)"
// @Param       body          body   processReq true  "User message"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(req.sessionKey, output))
}

// Intents godoc
// @Summary     List routable intents
// @Description Returns the intent catalog split into general and login-required groups.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} intentsResp
// @Router      /api/v1/chat/intents [GET]
func (h *handler) Intents(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newIntentsResp(h.uc.Intents(ctx)))
}
