package testinfra

import (
	"net/http"
	"net/http/httptest"
	"time"
	"workforce/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// ExecuteRequest runs the request against the router and returns status,
// body and the recorder.
func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code, w.Body.String(), w
}

// BuildSession builds a signed-in session for tests.
func BuildSession(uid types.ID, name string) *session.Session {
	return &session.Session{
		Token:       "test-token-" + name,
		Identity:    session.Identity{ID: uid, Name: name, Nickname: name},
		SigningTime: time.Now(),
	}
}
