package work

import (
	"net/http"
	"workforce/bizerror"
	"workforce/domain"
	"workforce/misc"
	"workforce/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterWorksRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/works", middleWares...)
	g.GET("", handleQuery)
	g.POST("", handleCreate)
}

func handleQuery(c *gin.Context) {
	query := domain.WorkQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	works, err := QueryWorksFunc(&query)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: works, Total: uint64(len(works))})
}

func handleCreate(c *gin.Context) {
	creation := domain.WorkCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	w, err := CreateWorkFunc(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, w)
}
