package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"
)

const streamKeepalive = 25 * time.Second

// StreamLeadChanges serves an SSE feed of lead-change notifications for the
// caller. Events carry no payload; clients re-fetch the collection on each
// "leads-changed" event.
func StreamLeadChanges(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	events, err := service.WatchLeads(c.Request.Context(), user.ID)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("opening lead change stream failed")
		utils.ErrorResponse(c, "realtime feed unavailable", http.StatusServiceUnavailable)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("leads-changed", gin.H{"at": time.Now().UTC()})
			c.Writer.Flush()
		case <-keepalive.C:
			// comment line keeps proxies from closing the connection
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
