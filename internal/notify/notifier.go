// Package notify delivers reminder and achievement notifications. Delivery
// is a capability injected into the core: callers pick a primary channel and
// a local fallback is used if it fails.
package notify

import (
	"context"
)

// Notifier delivers a single notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// MultiNotifier tries the primary channel and falls back to the local
// channel when the primary fails.
type MultiNotifier struct {
	Primary  Notifier
	Fallback Notifier
}

// NewMultiNotifier creates a notifier with fallback delivery.
func NewMultiNotifier(primary, fallback Notifier) *MultiNotifier {
	return &MultiNotifier{Primary: primary, Fallback: fallback}
}

// Notify sends through the primary channel, then the fallback on failure.
func (m *MultiNotifier) Notify(ctx context.Context, title, message string) error {
	if m.Primary != nil {
		if err := m.Primary.Notify(ctx, title, message); err == nil {
			return nil
		}
	}
	if m.Fallback != nil {
		return m.Fallback.Notify(ctx, title, message)
	}
	return nil
}
