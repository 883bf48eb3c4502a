package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated EventCategory = "CREATED"
	EventCategoryUpdated EventCategory = "UPDATED"
	EventCategoryDeleted EventCategory = "DELETED"
)

const (
	SourceTypeCompany   = "COMPANY"
	SourceTypeWorker    = "WORKER"
	SourceTypeWork      = "WORK"
	SourceTypeWorkPlace = "WORKPLACE"
	SourceTypeWorkTime  = "WORKTIME"
)

type EventCategory string

type ChangeEvent struct {
	SourceId   types.ID `json:"sourceId"`
	SourceType string   `json:"sourceType"`
	SourceDesc string   `json:"sourceDesc"`

	// OwnerWorkerId scopes workplace and worktime changes to the worker
	// whose pages they affect; zero for other source types.
	OwnerWorkerId types.ID `json:"ownerWorkerId"`

	CreatorId   types.ID `json:"creatorId"`
	CreatorName string   `json:"creatorName"`

	EventCategory EventCategory `json:"eventCategory"` // CREATED, UPDATED, DELETED
}

type ChangeRecord struct {
	ChangeEvent

	Timestamp types.Timestamp `json:"timestamp" sql:"type:DATETIME(6)"`
}

func (r *ChangeRecord) TableName() string {
	return "change_records"
}
