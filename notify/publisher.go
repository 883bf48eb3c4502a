package notify

import (
	"workforce/event"
)

// ChangeEventHandler returns the event handler that resolves which page
// topic a change affects and fans a refresh cue out to its viewers:
//
//	company change   -> visitors_companies
//	worker change    -> visitors_workers
//	workplace change -> visitors_workers_<ownerWorkerId>
//	worktime change  -> visitors_workers_<ownerWorkerId>
func ChangeEventHandler(registry *TopicRegistry) event.EventHandler {
	return func(record *event.ChangeRecord) *event.EventHandleResult {
		topic, ok := topicOfChange(&record.ChangeEvent)
		if !ok {
			return nil
		}
		registry.Publish(topic, RefreshCue)
		return &event.EventHandleResult{Success: true, Message: topic, HandlerIdentifier: "visitor-notifier"}
	}
}

func topicOfChange(e *event.ChangeEvent) (string, bool) {
	switch e.SourceType {
	case event.SourceTypeCompany:
		return TopicForPage(PageCompanies, ""), true
	case event.SourceTypeWorker:
		return TopicForPage(PageWorkers, ""), true
	case event.SourceTypeWorkPlace, event.SourceTypeWorkTime:
		return TopicForPage(PageWorkers, e.OwnerWorkerId.String()), true
	}
	return "", false
}
