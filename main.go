package main

import (
	"log"
	"net/http"
	"workforce/account"
	"workforce/bizerror"
	"workforce/domain"
	"workforce/domain/company"
	"workforce/domain/work"
	"workforce/domain/worker"
	"workforce/domain/workplace"
	"workforce/domain/worktime"
	"workforce/event"
	"workforce/notify"
	"workforce/persistence"
	"workforce/session"
	"workforce/sessions"
	"workforce/visitors"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		log.Fatalf("parse database config failed %v\n", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		log.Fatalf("database connection failed %v\n", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB().AutoMigrate(&domain.Company{}, &domain.Manager{}, &domain.Work{}, &domain.Worker{},
		&domain.WorkPlace{}, &domain.WorkTime{}, &event.ChangeRecord{}, &account.User{}).Error
	if err != nil {
		log.Fatalf("database migration failed %v\n", err)
	}

	registry := notify.NewTopicRegistry()
	event.EventHandlers = append(event.EventHandlers, notify.ChangeEventHandler(registry))

	engine := gin.Default()
	engine.Use(bizerror.ErrorHandling())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "workforce")
	})

	account.RegisterUsersRestAPI(engine)
	sessions.RegisterSessionsHandler(engine)

	company.RegisterCompaniesRestAPI(engine)
	worker.RegisterWorkersRestAPI(engine, session.SimpleAuthFilter())
	work.RegisterWorksRestAPI(engine, session.SimpleAuthFilter())
	workplace.RegisterWorkPlacesRestAPI(engine, session.SimpleAuthFilter())
	worktime.RegisterWorkTimesRestAPI(engine, session.SimpleAuthFilter())

	visitors.RegisterVisitorsAPI(engine, registry)

	err = engine.Run(":80")
	if err != nil {
		panic(err)
	}
}
