package api

// TopicRequest is the inbound payload for an explanation request. An
// absent or empty topic is forwarded as-is; the request shape is the
// only thing validated here.
type TopicRequest struct {
	Topic string `json:"topic"`
}
