package work

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
	workIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateWorkFunc = CreateWork
	QueryWorksFunc = QueryWorks
)

func CreateWork(c *domain.WorkCreation, sess *session.Session) (*domain.Work, error) {
	w := domain.Work{ID: common.NextId(workIdWorker), CompanyID: c.CompanyID, Name: c.Name,
		CreateTime: types.CurrentTimestamp()}

	var ev *event.ChangeRecord
	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var company domain.Company
		if err := tx.Where(&domain.Company{ID: c.CompanyID}).First(&company).Error; err != nil {
			return err
		}

		var count int
		if err := tx.Model(&domain.Work{}).Where(&domain.Work{CompanyID: c.CompanyID, Name: c.Name}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &bizerror.ErrConflict{Message: "work '" + c.Name + "' already exists in this company"}
		}

		if err := tx.Create(&w).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeWork, w.ID, w.Name,
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

func QueryWorks(query *domain.WorkQuery) ([]domain.Work, error) {
	works := []domain.Work{}
	db := persistence.ActiveDataSourceManager.GormDB()

	q := db.Order("id ASC")
	if query.CompanyID != 0 {
		q = q.Where(&domain.Work{CompanyID: query.CompanyID})
	}
	if query.Name != "" {
		q = q.Where("name like ?", "%"+query.Name+"%")
	}
	if err := q.Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}
