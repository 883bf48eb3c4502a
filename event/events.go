package event

import (
	"workforce/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

func CreateEvent(sourceType string, sourceId types.ID, sourceDesc string, category EventCategory,
	ownerWorkerId types.ID, identity *session.Identity, db *gorm.DB) (*ChangeRecord, error) {

	record := ChangeRecord{
		ChangeEvent: ChangeEvent{
			SourceType: sourceType,
			SourceId:   sourceId,
			SourceDesc: sourceDesc,

			OwnerWorkerId: ownerWorkerId,

			EventCategory: category,

			CreatorId:   identity.ID,
			CreatorName: identity.Name,
		},
		Timestamp: types.CurrentTimestamp(),
	}
	if err := ChangeRecordPersistFunc(&record, db); err != nil {
		return nil, err
	}
	return &record, nil
}
