package company

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

func RegisterCompaniesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/companies", middleWares...)
	g.GET("", handleQuery)
	g.POST("", handleCreate)
	g.GET(":id", handleDetail)
	g.POST(":id/managers", handleAddManager)
}

func handleQuery(c *gin.Context) {
	companies, err := QueryCompaniesFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: companies, Total: uint64(len(companies))})
}

func handleCreate(c *gin.Context) {
	creation := domain.CompanyCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	company, err := CreateCompanyFunc(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, company)
}

func handleDetail(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := DetailCompanyFunc(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleAddManager(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	creation := domain.ManagerCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	manager, err := AddManagerFunc(id, &creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, manager)
}
