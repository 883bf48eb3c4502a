package visitors_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"workforce/notify"
	"workforce/visitors"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func startVisitorServer() (*httptest.Server, *notify.TopicRegistry) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registry := notify.NewTopicRegistry()
	visitors.RegisterVisitorsAPI(router, registry)
	return httptest.NewServer(router), registry
}

func dial(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := strings.Replace(server.URL, "http://", "ws://", 1) + path
	conn, _, err := websocket.Dial(ctx, url, nil)
	Expect(err).To(BeNil())
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readRefreshMessage(conn *websocket.Conn) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	if err != nil {
		return "", err
	}
	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func TestVisitorConnectionLifecycle(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should subscribe on open and forward published cues to the peer", func(t *testing.T) {
		server, registry := startVisitorServer()
		defer server.Close()

		conn := dial(t, server, "/ws/workers/42")
		Eventually(func() int { return registry.SubscriberCount("visitors_workers_42") }).Should(Equal(1))

		registry.Publish("visitors_workers_42", notify.RefreshCue)

		message, err := readRefreshMessage(conn)
		Expect(err).To(BeNil())
		Expect(message).To(Equal(notify.RefreshCue))
	})

	t.Run("should only deliver to viewers of the published topic", func(t *testing.T) {
		server, registry := startVisitorServer()
		defer server.Close()

		conn42 := dial(t, server, "/ws/workers/42")
		conn7 := dial(t, server, "/ws/workers/7")
		Eventually(func() int { return registry.SubscriberCount("visitors_workers_42") }).Should(Equal(1))
		Eventually(func() int { return registry.SubscriberCount("visitors_workers_7") }).Should(Equal(1))

		registry.Publish("visitors_workers_42", notify.RefreshCue)

		message, err := readRefreshMessage(conn42)
		Expect(err).To(BeNil())
		Expect(message).To(Equal(notify.RefreshCue))

		// the worker 7 viewer gets nothing, the read must time out
		_, err = readRefreshMessage(conn7)
		Expect(err).ToNot(BeNil())
	})

	t.Run("should subscribe list pages without an id segment", func(t *testing.T) {
		server, registry := startVisitorServer()
		defer server.Close()

		conn := dial(t, server, "/ws/companies")
		Eventually(func() int { return registry.SubscriberCount("visitors_companies") }).Should(Equal(1))

		registry.Publish("visitors_companies", notify.RefreshCue)

		message, err := readRefreshMessage(conn)
		Expect(err).To(BeNil())
		Expect(message).To(Equal(notify.RefreshCue))
	})

	t.Run("should not leak a subscription when the handshake fails", func(t *testing.T) {
		server, registry := startVisitorServer()
		defer server.Close()

		// a plain GET carries no upgrade headers, the accept fails
		resp, err := server.Client().Get(server.URL + "/ws/workers/42")
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).ToNot(Equal(http.StatusSwitchingProtocols))
		Eventually(func() int { return registry.SubscriberCount("visitors_workers_42") }).Should(Equal(0))
	})

	t.Run("should unsubscribe when the peer closes the connection", func(t *testing.T) {
		server, registry := startVisitorServer()
		defer server.Close()

		conn := dial(t, server, "/ws/workers")
		Eventually(func() int { return registry.SubscriberCount("visitors_workers") }).Should(Equal(1))

		conn.Close(websocket.StatusNormalClosure, "")
		Eventually(func() int { return registry.SubscriberCount("visitors_workers") }).Should(Equal(0))
	})
}
