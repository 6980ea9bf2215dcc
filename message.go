package widget

// MessageQueue collects application messages emitted by elements while
// handling events. The host passes one queue through an event pass and
// drains it afterwards.
type MessageQueue struct {
	messages []any
}

// Push appends a message to the queue.
func (q *MessageQueue) Push(msg any) {
	q.messages = append(q.messages, msg)
}

// Len returns the number of queued messages.
func (q *MessageQueue) Len() int {
	return len(q.messages)
}

// Drain returns all queued messages and empties the queue.
// The returned slice is owned by the caller.
func (q *MessageQueue) Drain() []any {
	msgs := q.messages
	q.messages = nil
	return msgs
}
