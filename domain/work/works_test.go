package work_test

import (
	"testing"
	"workforce/bizerror"
	"workforce/domain"
	"workforce/domain/work"
	"workforce/event"
	"workforce/persistence"
	"workforce/testinfra"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/gomega"
)

func setup(t *testing.T, testDatabase **testinfra.TestDatabase) *[]event.ChangeRecord {
	db := testinfra.StartMysqlTestDatabase("workforce")
	*testDatabase = db
	Expect(db.DS.GormDB().AutoMigrate(&domain.Company{}, &domain.Work{}, &event.ChangeRecord{}).Error).To(BeNil())
	persistence.ActiveDataSourceManager = db.DS

	Expect(db.DS.GormDB().Create(&domain.Company{ID: 1, Name: "Acme"}).Error).To(BeNil())

	event.ChangeRecordPersistFunc = func(record *event.ChangeRecord, db *gorm.DB) error {
		return nil
	}
	handedEvents := []event.ChangeRecord{}
	event.InvokeHandlersFunc = func(record *event.ChangeRecord) []event.EventHandleResult {
		handedEvents = append(handedEvents, *record)
		return nil
	}
	return &handedEvents
}

func teardown(t *testing.T, testDatabase *testinfra.TestDatabase) {
	if testDatabase != nil {
		testinfra.StopMysqlTestDatabase(testDatabase)
	}
}

func TestCreateWork(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should create a work for an existing company", func(t *testing.T) {
		defer teardown(t, testDatabase)
		handedEvents := setup(t, &testDatabase)

		sess := testinfra.BuildSession(500, "walter")
		w, err := work.CreateWork(&domain.WorkCreation{CompanyID: 1, Name: "welding"}, sess)
		Expect(err).To(BeNil())
		Expect(w.ID).ToNot(BeZero())
		Expect(w.CompanyID).To(Equal(types.ID(1)))
		Expect(w.Name).To(Equal("welding"))
		Expect(w.CreateTime).ToNot(Equal(types.Timestamp{}))

		Expect(len(*handedEvents)).To(Equal(1))
		Expect((*handedEvents)[0].SourceType).To(Equal(event.SourceTypeWork))
		Expect((*handedEvents)[0].SourceDesc).To(Equal("welding"))
	})

	t.Run("should reject a duplicated work name within a company", func(t *testing.T) {
		defer teardown(t, testDatabase)
		handedEvents := setup(t, &testDatabase)

		sess := testinfra.BuildSession(500, "walter")
		_, err := work.CreateWork(&domain.WorkCreation{CompanyID: 1, Name: "welding"}, sess)
		Expect(err).To(BeNil())

		w, err := work.CreateWork(&domain.WorkCreation{CompanyID: 1, Name: "welding"}, sess)
		Expect(w).To(BeNil())
		_, conflict := err.(*bizerror.ErrConflict)
		Expect(conflict).To(BeTrue())
		Expect(len(*handedEvents)).To(Equal(1))
	})

	t.Run("should fail for an unknown company", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		w, err := work.CreateWork(&domain.WorkCreation{CompanyID: 404, Name: "welding"},
			testinfra.BuildSession(500, "walter"))
		Expect(w).To(BeNil())
		Expect(gorm.IsRecordNotFoundError(err)).To(BeTrue())
	})
}

func TestQueryWorks(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should filter works by company and name", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		gormDB := persistence.ActiveDataSourceManager.GormDB()
		Expect(gormDB.Create(&domain.Company{ID: 2, Name: "Globex"}).Error).To(BeNil())
		Expect(gormDB.Create(&domain.Work{ID: 100, CompanyID: 1, Name: "welding"}).Error).To(BeNil())
		Expect(gormDB.Create(&domain.Work{ID: 101, CompanyID: 1, Name: "painting"}).Error).To(BeNil())
		Expect(gormDB.Create(&domain.Work{ID: 102, CompanyID: 2, Name: "welding"}).Error).To(BeNil())

		works, err := work.QueryWorks(&domain.WorkQuery{CompanyID: 1})
		Expect(err).To(BeNil())
		Expect(len(works)).To(Equal(2))
		Expect(works[0].ID).To(Equal(types.ID(100)))
		Expect(works[1].ID).To(Equal(types.ID(101)))

		works, err = work.QueryWorks(&domain.WorkQuery{CompanyID: 1, Name: "weld"})
		Expect(err).To(BeNil())
		Expect(len(works)).To(Equal(1))
		Expect(works[0].ID).To(Equal(types.ID(100)))

		works, err = work.QueryWorks(&domain.WorkQuery{})
		Expect(err).To(BeNil())
		Expect(len(works)).To(Equal(3))
	})
}
