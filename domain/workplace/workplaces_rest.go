package workplace

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

func RegisterWorkPlacesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/workplaces", middleWares...)
	g.GET("", handleQuery)
	g.POST("", handleHire)
	g.GET(":id", handleDetail)
	g.POST(":id/approve", handleApprove)
	g.POST(":id/cancel", handleCancel)
}

func handleQuery(c *gin.Context) {
	query := domain.WorkPlaceQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	workPlaces, err := QueryWorkPlacesFunc(&query)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: workPlaces, Total: uint64(len(workPlaces))})
}

func handleHire(c *gin.Context) {
	creation := domain.WorkPlaceCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	wp, err := HireWorkerFunc(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, wp)
}

func handleDetail(c *gin.Context) {
	id := parseId(c)
	detail, err := DetailWorkPlaceFunc(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleApprove(c *gin.Context) {
	id := parseId(c)
	wp, err := ApproveWorkPlaceFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, wp)
}

// handleCancel cancels a workplace still in status New; anything else is
// returned unchanged, mirroring the approve action's no-op behavior.
func handleCancel(c *gin.Context) {
	id := parseId(c)
	detail, err := DetailWorkPlaceFunc(id)
	if err != nil {
		panic(err)
	}

	wp := detail.WorkPlace
	if wp.Status == domain.StatusNew {
		cancelled, err := CancelWorkPlaceFunc(id, session.ExtractSessionFromGinContext(c))
		if err != nil {
			panic(err)
		}
		wp = *cancelled
	}
	c.JSON(http.StatusOK, &wp)
}

func parseId(c *gin.Context) types.ID {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	return id
}
