package event

import "github.com/jinzhu/gorm"

var (
	ChangeRecordPersistFunc = changeRecordPersist
)

func changeRecordPersist(record *ChangeRecord, db *gorm.DB) error {
	return db.Create(record).Error
}
