package handlers

import (
	"net/http"

	"github.com/capsule-retail/inventory-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatbotHandler struct {
	bot *services.Chatbot
}

func NewChatbotHandler(bot *services.Chatbot) *ChatbotHandler {
	return &ChatbotHandler{bot: bot}
}

type chatRequest struct {
	Message string `json:"message" form:"message" binding:"required,max=1000"`
}

// Reply: POST /chatbot
func (h *ChatbotHandler) Reply(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	reply, err := h.bot.Reply(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
