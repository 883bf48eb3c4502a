package domain

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

// WorkPlaceStatus values are wire-visible small integers, keep the order stable.
type WorkPlaceStatus int

const (
	StatusNew       WorkPlaceStatus = 0
	StatusApproved  WorkPlaceStatus = 1
	StatusCancelled WorkPlaceStatus = 2
	StatusFinished  WorkPlaceStatus = 3
)

func (s WorkPlaceStatus) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusApproved:
		return "Approved"
	case StatusCancelled:
		return "Cancelled"
	case StatusFinished:
		return "Finished"
	}
	return "Unknown"
}

const DefaultWeekLimit = 40

type Company struct {
	ID   types.ID `json:"id" gorm:"primary_key"`
	Name string   `json:"name"`
}

type Manager struct {
	ID        types.ID `json:"id" gorm:"primary_key"`
	CompanyID types.ID `json:"companyId"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Work struct {
	ID        types.ID `json:"id" gorm:"primary_key"`
	CompanyID types.ID `json:"companyId" gorm:"unique_index:uni_company_work_name"`

	Name       string          `json:"name" gorm:"unique_index:uni_company_work_name"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6)"`
}

type Worker struct {
	ID        types.ID `json:"id" gorm:"primary_key"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
}

// WorkPlace links a worker to a work under a manager, carrying the
// assignment lifecycle status. At most one WorkPlace per worker may be
// Approved at any instant.
type WorkPlace struct {
	ID        types.ID `json:"id" gorm:"primary_key"`
	ManagerID types.ID `json:"managerId"`
	WorkID    types.ID `json:"workId" gorm:"unique_index:uni_work_worker"`
	WorkerID  types.ID `json:"workerId" gorm:"unique_index:uni_work_worker"`

	Status    WorkPlaceStatus `json:"status"`
	WeekLimit int             `json:"weekLimit"`
}

// WorkTime is a dated start/end interval logged against an Approved
// workplace. Its status is independent of the workplace's status.
type WorkTime struct {
	ID          types.ID `json:"id" gorm:"primary_key"`
	WorkPlaceID types.ID `json:"workPlaceId"`
	WorkerID    types.ID `json:"workerId"`

	Date      time.Time `json:"date" sql:"type:DATE"`
	TimeStart string    `json:"timeStart" sql:"type:TIME"`
	TimeEnd   string    `json:"timeEnd" sql:"type:TIME"`

	Status WorkPlaceStatus `json:"status"`
}

type WorkPlaceDetail struct {
	WorkPlace

	Work      Work       `json:"work"`
	Worker    Worker     `json:"worker"`
	WorkTimes []WorkTime `json:"workTimes"`
}

type WorkerDetail struct {
	Worker

	WorkPlaces []WorkPlace `json:"workPlaces"`
	// WorkingNow is set when the worker currently holds an Approved workplace.
	WorkingNow bool `json:"workingNow"`
}

type CompanyDetail struct {
	Company

	Managers []Manager `json:"managers"`
	Works    []Work    `json:"works"`
}
