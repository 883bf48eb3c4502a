package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Subscriber is a live viewer-connection handle. Notify must not block
// on the remote peer; a failed delivery only affects this subscriber.
type Subscriber interface {
	Identifier() string
	Notify(cue string) error
}

// TopicRegistry maps topic names to the set of currently subscribed
// viewer connections. A single instance is constructed at process start
// and handed to the connection lifecycle and the change publisher.
type TopicRegistry struct {
	mu     sync.RWMutex
	topics map[string]map[Subscriber]bool
}

func NewTopicRegistry() *TopicRegistry {
	return &TopicRegistry{topics: map[string]map[Subscriber]bool{}}
}

func (r *TopicRegistry) Subscribe(topic string, s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers := r.topics[topic]
	if subscribers == nil {
		subscribers = map[Subscriber]bool{}
		r.topics[topic] = subscribers
	}
	subscribers[s] = true
}

func (r *TopicRegistry) Unsubscribe(topic string, s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers := r.topics[topic]
	if subscribers == nil {
		return
	}
	delete(subscribers, s)
	if len(subscribers) == 0 {
		delete(r.topics, topic)
	}
}

// Publish delivers cue to every subscriber of topic. An unknown topic is
// a no-op. Delivery happens outside the registry lock so publishes to
// other topics and membership changes are not held up by a slow peer.
func (r *TopicRegistry) Publish(topic string, cue string) {
	r.mu.RLock()
	snapshot := make([]Subscriber, 0, len(r.topics[topic]))
	for s := range r.topics[topic] {
		snapshot = append(snapshot, s)
	}
	r.mu.RUnlock()

	for _, s := range snapshot {
		if err := s.Notify(cue); err != nil {
			logrus.Warn("failed to deliver refresh cue to subscriber "+s.Identifier()+" of topic "+topic+": ", err)
		}
	}
}

func (r *TopicRegistry) SubscriberCount(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}
