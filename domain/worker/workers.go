package worker

import (
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
	workerIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateWorkerFunc = CreateWorker
	QueryWorkersFunc = QueryWorkers
	DetailWorkerFunc = DetailWorker
)

func CreateWorker(c *domain.WorkerCreation, sess *session.Session) (*domain.Worker, error) {
	w := domain.Worker{ID: common.NextId(workerIdWorker), FirstName: c.FirstName, LastName: c.LastName}

	var ev *event.ChangeRecord
	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&w).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeWorker, w.ID, w.FirstName+" "+w.LastName,
			event.EventCategoryCreated, 0, &sess.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &w, nil
}

func QueryWorkers() ([]domain.Worker, error) {
	workers := []domain.Worker{}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Order("id ASC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// DetailWorker returns the worker with all workplaces, ordered the way
// the worker page shows them (status first, newest within a status).
func DetailWorker(id types.ID) (*domain.WorkerDetail, error) {
	detail := domain.WorkerDetail{WorkPlaces: []domain.WorkPlace{}}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.Worker{ID: id}).First(&detail.Worker).Error; err != nil {
		return nil, err
	}
	if err := db.Where(&domain.WorkPlace{WorkerID: id}).
		Order("status ASC, id DESC").Find(&detail.WorkPlaces).Error; err != nil {
		return nil, err
	}
	for _, wp := range detail.WorkPlaces {
		if wp.Status == domain.StatusApproved {
			detail.WorkingNow = true
			break
		}
	}
	return &detail, nil
}
