package mock

import (
	"context"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/publisher"
)

// Ensure MockPublisher implements publisher.Publisher.
var _ publisher.Publisher = (*MockPublisher)(nil)

// MockPublisher records published change events for test assertions.
type MockPublisher struct {
	Published []*publisher.Event
	PublishFn func(ctx context.Context, event *publisher.Event) error
}

// NewMockPublisher creates a new mock publisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, event *publisher.Event) error {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, event)
	}
	m.Published = append(m.Published, event)
	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

// Actions returns the actions of all published events in order.
func (m *MockPublisher) Actions() []string {
	out := make([]string, len(m.Published))
	for i, e := range m.Published {
		out[i] = e.Action
	}
	return out
}
