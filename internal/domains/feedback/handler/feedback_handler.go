package handler

import (
	"net/http"
	"strings"

	"bookstore-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

// FeedbackHandler accepts the storefront's feedback form. Submissions are
// only logged; the visitor is sent back to the shop page.
type FeedbackHandler struct {
	redirectTo string
}

func NewFeedbackHandler(redirectTo string) *FeedbackHandler {
	return &FeedbackHandler{redirectTo: redirectTo}
}

// ========== POST /feedbacks ==========
// Accepts urlencoded form posts (the HTML form) and JSON bodies.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	fields := make(map[string]interface{})

	if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&fields); err != nil {
			response.BadRequest(c, "Feedback data must be a JSON object.")
			return
		}
	} else {
		if err := c.Request.ParseForm(); err != nil {
			response.BadRequest(c, "Feedback form could not be read.")
			return
		}
		for key, values := range c.Request.PostForm {
			fields[key] = strings.Join(values, ", ")
		}
	}

	log.Info().
		Str("request_id", c.GetString("request_id")).
		Fields(fields).
		Msg("Feedback received")

	c.Redirect(http.StatusFound, h.redirectTo)
}
