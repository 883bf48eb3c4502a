package account

import (
	"net/http"
	"workforce/bizerror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterUsersRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/users", middleWares...)
	g.POST("", handleSignup)
}

func handleSignup(c *gin.Context) {
	creation := UserCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	identity, err := CreateUserFunc(&creation)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, identity)
}
