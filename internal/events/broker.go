package events

import "time"

// Event types published on content lifecycle changes.
const (
	TypePostCreated     = "post.created"
	TypeCommentCreated  = "comment.created"
	TypePostArchived    = "post.archived"
	TypeCommentArchived = "comment.archived"
)

// Event is the payload fanned out to live listeners. CommentID is zero
// for post events.
type Event struct {
	Type      string    `json:"type"`
	PostID    uint      `json:"post_id"`
	CommentID uint      `json:"comment_id,omitempty"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// Broker fans content events out to subscribers. The redis implementation
// carries them across nodes; the noop implementation drops them.
type Broker interface {
	Publish(event Event) error
	Subscribe() (<-chan Event, error)
	Close() error
}

// NoopBroker satisfies Broker without a backing transport. Used when
// redis is not configured and in service-level tests.
type NoopBroker struct{}

func (NoopBroker) Publish(Event) error { return nil }

func (NoopBroker) Subscribe() (<-chan Event, error) {
	ch := make(chan Event)
	return ch, nil
}

func (NoopBroker) Close() error { return nil }
