package domain

import "github.com/fundwit/go-commons/types"

type CompanyCreation struct {
	Name string `json:"name" validate:"required" binding:"required"`
}

type ManagerCreation struct {
	FirstName string `json:"firstName" validate:"required" binding:"required"`
	LastName  string `json:"lastName" validate:"required" binding:"required"`
	Email     string `json:"email" validate:"required,email" binding:"required,email"`
}

type WorkerCreation struct {
	FirstName string `json:"firstName" validate:"required" binding:"required"`
	LastName  string `json:"lastName" validate:"required" binding:"required"`
}

type WorkCreation struct {
	CompanyID types.ID `json:"companyId" validate:"required" binding:"required"`
	Name      string   `json:"name" validate:"required" binding:"required"`
}

type WorkPlaceCreation struct {
	ManagerID types.ID `json:"managerId" validate:"required" binding:"required"`
	WorkID    types.ID `json:"workId" validate:"required" binding:"required"`
	WorkerID  types.ID `json:"workerId" validate:"required" binding:"required"`

	WeekLimit int `json:"weekLimit" validate:"omitempty,gt=0" binding:"omitempty,gt=0"`
}

type WorkTimeCreation struct {
	// Date in "2006-01-02" form, TimeStart/TimeEnd in "15:04" form.
	Date      string `json:"date" validate:"required" binding:"required"`
	TimeStart string `json:"timeStart" validate:"required" binding:"required"`
	TimeEnd   string `json:"timeEnd" validate:"required" binding:"required"`
}

type WorkPlaceQuery struct {
	WorkerID types.ID        `form:"workerId"`
	WorkID   types.ID        `form:"workId"`
	Status   WorkPlaceStatus `form:"status"`
	// StatusFilter is set when Status should be applied (zero value is a valid status).
	StatusFilter bool `form:"statusFilter"`
}

type WorkQuery struct {
	CompanyID types.ID `form:"companyId"`
	Name      string   `form:"name"`
}
