package notify_test

import (
	"errors"
	"workforce/notify"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type recordingSubscriber struct {
	id   string
	cues []string
	err  error
}

func (s *recordingSubscriber) Identifier() string {
	return s.id
}

func (s *recordingSubscriber) Notify(cue string) error {
	if s.err != nil {
		return s.err
	}
	s.cues = append(s.cues, cue)
	return nil
}

var _ = Describe("TopicRegistry", func() {
	var (
		registry *notify.TopicRegistry
		sub1     *recordingSubscriber
		sub2     *recordingSubscriber
	)

	BeforeEach(func() {
		registry = notify.NewTopicRegistry()
		sub1 = &recordingSubscriber{id: "sub1"}
		sub2 = &recordingSubscriber{id: "sub2"}
	})

	Describe("Subscribe", func() {
		It("should deliver published cues to every subscriber of the topic", func() {
			registry.Subscribe("visitors_workers_42", sub1)
			registry.Subscribe("visitors_workers_42", sub2)
			registry.Subscribe("visitors_workers_7", &recordingSubscriber{id: "other"})

			registry.Publish("visitors_workers_42", notify.RefreshCue)

			Expect(sub1.cues).To(Equal([]string{notify.RefreshCue}))
			Expect(sub2.cues).To(Equal([]string{notify.RefreshCue}))
			Expect(registry.SubscriberCount("visitors_workers_42")).To(Equal(2))
			Expect(registry.SubscriberCount("visitors_workers_7")).To(Equal(1))
		})

		It("should be idempotent for an already subscribed handle", func() {
			registry.Subscribe("visitors_companies", sub1)
			registry.Subscribe("visitors_companies", sub1)

			Expect(registry.SubscriberCount("visitors_companies")).To(Equal(1))

			registry.Publish("visitors_companies", notify.RefreshCue)
			Expect(sub1.cues).To(Equal([]string{notify.RefreshCue}))
		})
	})

	Describe("Unsubscribe", func() {
		It("should leave the topic empty after a subscribe/unsubscribe round-trip", func() {
			registry.Subscribe("visitors_workers", sub1)
			registry.Unsubscribe("visitors_workers", sub1)

			Expect(registry.SubscriberCount("visitors_workers")).To(Equal(0))

			registry.Publish("visitors_workers", notify.RefreshCue)
			Expect(sub1.cues).To(BeEmpty())
		})

		It("should tolerate unsubscribing an absent handle", func() {
			registry.Unsubscribe("visitors_workers", sub1)
			Expect(registry.SubscriberCount("visitors_workers")).To(Equal(0))
		})
	})

	Describe("Publish", func() {
		It("should treat an unknown topic as a no-op", func() {
			registry.Publish("visitors_unknown", notify.RefreshCue)
			Expect(sub1.cues).To(BeEmpty())
		})

		It("should keep delivering when one subscriber fails", func() {
			broken := &recordingSubscriber{id: "broken", err: errors.New("connection gone")}
			registry.Subscribe("visitors_companies", broken)
			registry.Subscribe("visitors_companies", sub1)
			registry.Subscribe("visitors_companies", sub2)

			registry.Publish("visitors_companies", notify.RefreshCue)

			Expect(sub1.cues).To(Equal([]string{notify.RefreshCue}))
			Expect(sub2.cues).To(Equal([]string{notify.RefreshCue}))
		})
	})
})
