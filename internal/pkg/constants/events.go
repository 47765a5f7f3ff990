package constants

// NSQ topics consumed by the dispatch service
const (
	TopicJobRequested = "job.requested"
	TopicJobDeclined  = "job.declined"
	TopicJobCancelled = "job.cancelled"
	TopicDriverBeacon = "driver.beacon"

	// Deferred trigger topics owned by the dispatch service itself
	TopicDispatchTrigger  = "dispatch.trigger"
	TopicDispatchResearch = "dispatch.research"
)

// NSQ topics published for downstream collaborators
const (
	TopicDriverOffer      = "dispatch.offer"      // consumed by the realtime edge
	TopicUserNotification = "notification.user"   // consumed by the notification service
	TopicJobExpired       = "dispatch.expired"    // consumed by the job service
)

// Realtime event names carried inside offer payloads
const (
	EventJobOffer = "job_offer"
)
