package workplace

import (
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

var (
	workPlaceIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	HireWorkerFunc       = HireWorker
	QueryWorkPlacesFunc  = QueryWorkPlaces
	DetailWorkPlaceFunc  = DetailWorkPlace
	ApproveWorkPlaceFunc = ApproveWorkPlace
	CancelWorkPlaceFunc  = CancelWorkPlace
)

// HireWorker creates a workplace in status New. A worker cannot hold two
// workplaces for the same work.
func HireWorker(c *domain.WorkPlaceCreation, sess *session.Session) (*domain.WorkPlace, error) {
	weekLimit := c.WeekLimit
	if weekLimit == 0 {
		weekLimit = domain.DefaultWeekLimit
	}
	wp := domain.WorkPlace{ID: common.NextId(workPlaceIdWorker), ManagerID: c.ManagerID,
		WorkID: c.WorkID, WorkerID: c.WorkerID, Status: domain.StatusNew, WeekLimit: weekLimit}

	var ev *event.ChangeRecord
	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&domain.Manager{ID: c.ManagerID}).First(&domain.Manager{}).Error; err != nil {
			return err
		}
		if err := tx.Where(&domain.Work{ID: c.WorkID}).First(&domain.Work{}).Error; err != nil {
			return err
		}
		if err := tx.Where(&domain.Worker{ID: c.WorkerID}).First(&domain.Worker{}).Error; err != nil {
			return err
		}

		var count int
		if err := tx.Model(&domain.WorkPlace{}).Where("work_id = ? AND worker_id = ?", c.WorkID, c.WorkerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &bizerror.ErrConflict{Message: "the worker already has a workplace for this work"}
		}

		if err := tx.Create(&wp).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeWorkPlace, wp.ID, wp.ID.String(),
			event.EventCategoryCreated, wp.WorkerID, &sess.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &wp, nil
}

// ApproveWorkPlace accepts a New workplace for its worker. In one
// transaction: the worker's currently Approved workplace becomes
// Finished (it was legitimately active, not withdrawn), the target
// becomes Approved, and every other New workplace of the worker becomes
// Cancelled. A worker never holds two Approved workplaces.
//
// Approving a workplace which is not New changes nothing and returns
// the record as it is.
func ApproveWorkPlace(id types.ID, sess *session.Session) (*domain.WorkPlace, error) {
	var result domain.WorkPlace
	var events []*event.ChangeRecord

	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var target domain.WorkPlace
		if err := tx.Where(&domain.WorkPlace{ID: id}).First(&target).Error; err != nil {
			return err
		}
		result = target
		if target.Status != domain.StatusNew {
			return nil
		}

		var active []domain.WorkPlace
		if err := tx.Where("worker_id = ? AND status = ?", target.WorkerID, domain.StatusApproved).
			Find(&active).Error; err != nil {
			return err
		}
		for _, wp := range active {
			ev, err := changeStatus(tx, wp, domain.StatusFinished, sess)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}

		ev, err := changeStatus(tx, target, domain.StatusApproved, sess)
		if err != nil {
			return err
		}
		events = append(events, ev)

		// accepting one offer withdraws the worker's other pending offers
		var pending []domain.WorkPlace
		if err := tx.Where("worker_id = ? AND status = ? AND id != ?", target.WorkerID, domain.StatusNew, target.ID).
			Find(&pending).Error; err != nil {
			return err
		}
		for _, wp := range pending {
			ev, err := changeStatus(tx, wp, domain.StatusCancelled, sess)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}

		result.Status = domain.StatusApproved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		for _, ev := range events {
			event.InvokeHandlersFunc(ev)
		}
	}
	return &result, nil
}

// CancelWorkPlace cancels the workplace whatever its current status is.
// The rest action layer only applies it to New workplaces.
func CancelWorkPlace(id types.ID, sess *session.Session) (*domain.WorkPlace, error) {
	var result domain.WorkPlace
	var ev *event.ChangeRecord

	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var target domain.WorkPlace
		if err := tx.Where(&domain.WorkPlace{ID: id}).First(&target).Error; err != nil {
			return err
		}
		var err error
		ev, err = changeStatus(tx, target, domain.StatusCancelled, sess)
		if err != nil {
			return err
		}
		result = target
		result.Status = domain.StatusCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &result, nil
}

func changeStatus(tx *gorm.DB, wp domain.WorkPlace, status domain.WorkPlaceStatus, sess *session.Session) (*event.ChangeRecord, error) {
	if err := tx.Model(&domain.WorkPlace{}).Where(&domain.WorkPlace{ID: wp.ID}).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return event.CreateEvent(event.SourceTypeWorkPlace, wp.ID, wp.ID.String(),
		event.EventCategoryUpdated, wp.WorkerID, &sess.Identity, tx)
}

func QueryWorkPlaces(query *domain.WorkPlaceQuery) ([]domain.WorkPlace, error) {
	workPlaces := []domain.WorkPlace{}
	db := persistence.ActiveDataSourceManager.GormDB()

	q := db.Order("status ASC, id DESC")
	if query.WorkerID != 0 {
		q = q.Where("worker_id = ?", query.WorkerID)
	}
	if query.WorkID != 0 {
		q = q.Where("work_id = ?", query.WorkID)
	}
	if query.StatusFilter {
		q = q.Where("status = ?", query.Status)
	}
	if err := q.Find(&workPlaces).Error; err != nil {
		return nil, err
	}
	return workPlaces, nil
}

func DetailWorkPlace(id types.ID) (*domain.WorkPlaceDetail, error) {
	detail := domain.WorkPlaceDetail{WorkTimes: []domain.WorkTime{}}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.WorkPlace{ID: id}).First(&detail.WorkPlace).Error; err != nil {
		return nil, err
	}
	if err := db.Where(&domain.Work{ID: detail.WorkID}).First(&detail.Work).Error; err != nil {
		return nil, err
	}
	if err := db.Where(&domain.Worker{ID: detail.WorkerID}).First(&detail.Worker).Error; err != nil {
		return nil, err
	}
	if err := db.Where(&domain.WorkTime{WorkPlaceID: id}).Order("date DESC").
		Find(&detail.WorkTimes).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}
