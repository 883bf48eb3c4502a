package worker

import (
	"net/http"
	"workforce/bizerror"
	"workforce/domain"
	"workforce/misc"
	"workforce/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterWorkersRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/workers", middleWares...)
	g.GET("", handleQuery)
	g.POST("", handleCreate)
	g.GET(":id", handleDetail)
}

func handleQuery(c *gin.Context) {
	workers, err := QueryWorkersFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: workers, Total: uint64(len(workers))})
}

func handleCreate(c *gin.Context) {
	creation := domain.WorkerCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	w, err := CreateWorkerFunc(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, w)
}

func handleDetail(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := DetailWorkerFunc(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}
