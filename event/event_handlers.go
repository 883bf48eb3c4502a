package event

import (
	"github.com/sirupsen/logrus"
)

// EventHandler reacts to a committed change record. A handler returns
// nil when the change is not its concern.
type EventHandler func(record *ChangeRecord) *EventHandleResult

type EventHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

// EventHandlers are registered once at startup and invoked after the
// mutating transaction commits.
var EventHandlers []EventHandler

var InvokeHandlersFunc = invokeHandlers

func invokeHandlers(record *ChangeRecord) []EventHandleResult {
	results := []EventHandleResult{}
	for _, handler := range EventHandlers {
		r := handler(record)
		if r == nil {
			continue
		}

		results = append(results, *r)

		if r.Success {
			logrus.Info("change record handled. ", r)
		} else {
			logrus.Error("change record handler failed. ", r)
		}
	}
	return results
}
