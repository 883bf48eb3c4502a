package worktime

import (
	"time"
	"workforce/bizerror"
	"workforce/common"
	"workforce/domain"
	"workforce/event"
	"workforce/persistence"
	"workforce/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	workTimeIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateWorkTimeFunc = CreateWorkTime
)

// CreateWorkTime logs a time entry against an Approved workplace. A
// worker's worktimes are strictly increasing in date: a date not after
// the most recently created entry is rejected.
func CreateWorkTime(workPlaceId types.ID, c *domain.WorkTimeCreation, sess *session.Session) (*domain.WorkTime, error) {
	date, err := time.Parse(DateLayout, c.Date)
	if err != nil {
		return nil, &bizerror.ErrInvalidField{Field: "date", Message: "incorrect date value"}
	}
	if err := validateTimeRange(c.TimeStart, c.TimeEnd); err != nil {
		return nil, err
	}

	var created domain.WorkTime
	var ev *event.ChangeRecord
	db := persistence.ActiveDataSourceManager.GormDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		var wp domain.WorkPlace
		if err := tx.Where(&domain.WorkPlace{ID: workPlaceId}).First(&wp).Error; err != nil {
			return err
		}
		if wp.Status != domain.StatusApproved {
			return &bizerror.ErrWorkPlaceNotApproved{}
		}

		var last domain.WorkTime
		err := tx.Where(&domain.WorkTime{WorkerID: wp.WorkerID}).Order("id DESC").First(&last).Error
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			return err
		}
		if err == nil && last.Date.Format(DateLayout) >= date.Format(DateLayout) {
			return &bizerror.ErrInvalidField{Field: "date", Message: "incorrect date value"}
		}

		created = domain.WorkTime{ID: common.NextId(workTimeIdWorker), WorkPlaceID: wp.ID, WorkerID: wp.WorkerID,
			Date: date, TimeStart: c.TimeStart, TimeEnd: c.TimeEnd, Status: domain.StatusNew}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		ev, err = event.CreateEvent(event.SourceTypeWorkTime, created.ID, created.ID.String(),
			event.EventCategoryCreated, wp.WorkerID, &sess.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &created, nil
}

func validateTimeRange(start, end string) error {
	timeStart, err := time.Parse(TimeLayout, start)
	if err != nil {
		return &bizerror.ErrInvalidField{Field: "timeStart", Message: "incorrect time value"}
	}
	timeEnd, err := time.Parse(TimeLayout, end)
	if err != nil {
		return &bizerror.ErrInvalidField{Field: "timeEnd", Message: "incorrect time value"}
	}
	if !timeEnd.After(timeStart) {
		return &bizerror.ErrInvalidField{Field: "timeEnd", Message: "time_end must be after time_start"}
	}
	return nil
}
