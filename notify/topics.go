package notify

// Topic names identify "viewers currently looking at this page":
// visitors_<kind> for a list page, visitors_<kind>_<id> for a detail page.

const (
	topicPrefix = "visitors_"

	PageCompanies = "companies"
	PageWorkers   = "workers"
)

// RefreshCue is the whole payload of a published message. It is a cue to
// re-fetch current state, not a delta.
const RefreshCue = "Restart it!"

func TopicForPage(kind string, id string) string {
	if id == "" {
		return topicPrefix + kind
	}
	return topicPrefix + kind + "_" + id
}
