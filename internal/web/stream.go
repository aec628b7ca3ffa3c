package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// closeInvalidEndpoint is the close code for unrecognized websocket paths.
// It is distinct from normal closure and from provider auth failures so
// clients can tell a bad URL from a bad session.
const closeInvalidEndpoint = 4001

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleStream upgrades the client connection and hands it to the relay.
// Connections are accepted unconditionally; any validation failure is
// reported over the socket, never at the transport level.
func (s *Server) handleStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Info("failed to upgrade websocket", "error", err)
		return
	}
	defer conn.Close()

	s.relay.Handle(c.Request.Context(), conn, c.Param("symbol"))

	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
}

// invalidEndpointPayload lists the recognized websocket paths.
type invalidEndpointPayload struct {
	Error          string   `json:"error"`
	ValidEndpoints []string `json:"valid_endpoints"`
}

// handleUnknownPath rejects unmatched paths. Websocket upgrades get the
// structured rejection and close code 4001; plain HTTP gets a 404.
func (s *Server) handleUnknownPath(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
	conn.WriteJSON(invalidEndpointPayload{
		Error:          "Invalid WebSocket endpoint",
		ValidEndpoints: []string{"/ws/options/{symbol}/"},
	})
	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(closeInvalidEndpoint, "invalid endpoint"),
		time.Now().Add(time.Second),
	)
}
