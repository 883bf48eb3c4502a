package company

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
	companyIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})
	managerIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateCompanyFunc  = CreateCompany
	QueryCompaniesFunc = QueryCompanies
	DetailCompanyFunc  = DetailCompany
	AddManagerFunc     = AddManager
)

func CreateCompany(c *domain.CompanyCreation, sess *session.Session) (*domain.Company, error) {
	company := domain.Company{ID: common.NextId(companyIdWorker), Name: c.Name}

	var ev *event.ChangeRecord
	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeCompany, company.ID, company.Name,
			event.EventCategoryCreated, 0, &sess.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &company, nil
}

func QueryCompanies() ([]domain.Company, error) {
	companies := []domain.Company{}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Order("id ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func DetailCompany(id types.ID) (*domain.CompanyDetail, error) {
	detail := domain.CompanyDetail{Managers: []domain.Manager{}, Works: []domain.Work{}}
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where(&domain.Company{ID: id}).First(&detail.Company).Error; err != nil {
		return nil, err
	}
	if err := db.Where(&domain.Manager{CompanyID: id}).Find(&detail.Managers).Error; err != nil {
		return nil, err
	}
	if err := db.Where(&domain.Work{CompanyID: id}).Find(&detail.Works).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// AddManager hires a manager into the company. The company list page
// shows manager counts, so the change is published as a company update.
func AddManager(companyId types.ID, c *domain.ManagerCreation, sess *session.Session) (*domain.Manager, error) {
	manager := domain.Manager{ID: common.NextId(managerIdWorker), CompanyID: companyId,
		FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}

	var ev *event.ChangeRecord
	db := persistence.ActiveDataSourceManager.GormDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var company domain.Company
		if err := tx.Where(&domain.Company{ID: companyId}).First(&company).Error; err != nil {
			return err
		}
		if err := tx.Create(&manager).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeCompany, company.ID, company.Name,
			event.EventCategoryUpdated, 0, &sess.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return &manager, nil
}
