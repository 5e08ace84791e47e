package mq

// WatchEvent is published whenever someone watches a video. The consumer folds
// these into the visit counter so the write stays off the request path.
type WatchEvent struct {
	EventID   string `json:"event_id"`
	UserID    int64  `json:"user_id"`
	VideoID   int64  `json:"video_id"`
	Timestamp int64  `json:"timestamp"`
}

const (
	WatchEventExchange = "watch_events"
	WatchEventQueue    = "watch_event_queue"
	WatchEventKey      = "watch"
)
