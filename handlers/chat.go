package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"datachat/charts"
	"datachat/models"
	"datachat/response"
	"datachat/stats"
	"datachat/validation"

	"github.com/gin-gonic/gin"
)

// ChatHandler answers a natural language question about the session's dataset
// @Summary      Ask a question about the loaded dataset
// @Description  Send a question about the session's dataset. The AI plans the analysis, the service computes statistics and attaches chart data where the plan asks for a visualization.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      models.ChatRequest  true  "Chat request with message"
// @Header       200      {string}  X-Session-ID        "Optional session ID, defaults to \"default\""
// @Success      200      {object}  models.ChatResponse "Answer with optional analysis result"
// @Failure      400      {object}  map[string]string   "Invalid request or no dataset loaded"
// @Failure      500      {object}  map[string]string   "Internal server error"
// @Router       /api/chat [post]
func (h *Handlers) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	log.Printf("[CHAT HANDLER] Session: %s, Message: %s", sessionID, req.Message)

	// Check if the question makes sense (not gibberish)
	if !validation.IsValidQuestion(req.Message) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The question appears to be invalid or gibberish. Please provide a meaningful question."})
		return
	}

	ds, ok := h.datasets.Get(sessionID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No dataset loaded for this session. Upload a dataset first."})
		return
	}

	profile, err := h.profiler.Build(ds)
	if err != nil {
		log.Printf("[CHAT HANDLER] Error profiling dataset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to profile dataset: %v", err)})
		return
	}

	// Recent history gives the model conversational context. Losing it
	// is not fatal.
	history, err := h.db.GetChatHistory(sessionID, 6)
	if err != nil {
		log.Printf("[CHAT HANDLER] Error loading chat history: %v", err)
		history = nil
	}

	plan, err := h.aiService.ResolvePlan(c.Request.Context(), req.Message, profile, len(ds.Rows), history)
	if err != nil {
		log.Printf("[CHAT HANDLER] Error resolving plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to analyze question: %v", err)})
		return
	}

	// Compute every planned operation. Failed operations stay in the
	// result list so the caller can see what went wrong and why.
	var output interface{}
	if len(plan.Operations) > 0 {
		results := make([]stats.Result, 0, len(plan.Operations))
		for _, op := range plan.Operations {
			results = append(results, h.engine.Compute(op, ds))
		}
		if len(results) == 1 {
			output = results[0]
		} else {
			output = results
		}
	}

	responseText := plan.Answer

	var chartSpec charts.Spec
	if len(plan.ChartSpec) > 0 {
		check := h.validator.Validate(plan.ChartSpec, profile)
		if check.Valid {
			chartSpec = plan.ChartSpec.Decorate(ds.Rows)
		} else {
			log.Printf("[CHAT HANDLER] Dropping invalid chart spec: %v", check.Issues)
			note := fmt.Sprintf("The planned chart was dropped: %s", strings.Join(check.Issues, "; "))
			if responseText == "" {
				responseText = note
			} else {
				responseText = responseText + "\n\n" + note
			}
		}
	}

	resp := models.ChatResponse{}
	// A plan with neither statistics nor a chart is an answer-only
	// reply and carries no result envelope.
	if envelope, err := response.Normalize(chartSpec, output, plan.Description); err == nil {
		resp.Result = envelope
	}
	if responseText == "" && resp.Result != nil {
		responseText = resp.Result.Description
	}
	resp.Response = responseText

	if err := h.db.StoreChatHistory(sessionID, req.Message, responseText); err != nil {
		log.Printf("[CHAT HANDLER] Error storing chat history: %v", err)
	}

	log.Printf("[CHAT HANDLER] Sending response to client")
	c.JSON(http.StatusOK, resp)
}
