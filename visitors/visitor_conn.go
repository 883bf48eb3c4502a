package visitors

import (
	"context"
	"encoding/json"
	"workforce/notify"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// cueBacklog bounds undelivered cues per connection. A refresh cue is
// idempotent, so when the peer is slow extra cues coalesce instead of
// blocking the publisher.
const cueBacklog = 8

func RegisterVisitorsAPI(r *gin.Engine, registry *notify.TopicRegistry) {
	h := &visitorHandler{registry: registry}
	r.GET("/ws/:page", h.handleConnect)
	r.GET("/ws/:page/:id", h.handleConnect)
}

type visitorHandler struct {
	registry *notify.TopicRegistry
}

// visitorConn is the registry handle of one live viewer connection.
type visitorConn struct {
	id   string
	cues chan string
}

func (v *visitorConn) Identifier() string {
	return v.id
}

func (v *visitorConn) Notify(cue string) error {
	select {
	case v.cues <- cue:
	default:
	}
	return nil
}

type refreshMessage struct {
	Message string `json:"message"`
}

func (h *visitorHandler) handleConnect(c *gin.Context) {
	topic := notify.TopicForPage(c.Param("page"), c.Param("id"))

	// subscribe before the handshake completes so no cue published in
	// between is missed; the backlog holds cues until the writer runs
	visitor := &visitorConn{id: uuid.New().String(), cues: make(chan string, cueBacklog)}
	h.registry.Subscribe(topic, visitor)
	// runs on every exit path, abrupt closes must not leak dead handles
	defer h.registry.Unsubscribe(topic, visitor)

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		logrus.Warn("failed to accept visitor connection for topic "+topic+": ", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	logrus.Info("visitor " + visitor.id + " subscribed to " + topic)
	defer logrus.Info("visitor " + visitor.id + " unsubscribed from " + topic)

	h.serve(c.Request.Context(), conn, visitor)
}

func (h *visitorHandler) serve(ctx context.Context, conn *websocket.Conn, visitor *visitorConn) {
	readerGone := make(chan struct{})
	go func() {
		defer close(readerGone)
		for {
			// peer messages carry no meaning in this protocol, reading
			// only detects close
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case cue := <-visitor.cues:
			data, err := json.Marshal(refreshMessage{Message: cue})
			if err != nil {
				logrus.Error("failed to marshal refresh message: ", err)
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				logrus.Debug("visitor "+visitor.id+" write failed: ", err)
				return
			}
		case <-readerGone:
			return
		case <-ctx.Done():
			return
		}
	}
}
