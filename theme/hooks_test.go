package theme

import "testing"

type subscription struct {
	event      string
	callbackID string
	priority   int
}

// mockRegistry tracks registered subscriptions and records unsubscribe calls.
type mockRegistry struct {
	subscriptions map[subscription]bool
	calls         []subscription
}

func newMockRegistry(subs ...subscription) *mockRegistry {
	m := &mockRegistry{subscriptions: make(map[subscription]bool)}
	for _, s := range subs {
		m.subscriptions[s] = true
	}
	return m
}

func (m *mockRegistry) Unsubscribe(event string, callbackID string, priority int) bool {
	s := subscription{event: event, callbackID: callbackID, priority: priority}
	m.calls = append(m.calls, s)
	if m.subscriptions[s] {
		delete(m.subscriptions, s)
		return true
	}
	return false
}

func TestDisableSharingLinks_RemovesBothEvents(t *testing.T) {
	reg := newMockRegistry(
		subscription{event: "the_content", callbackID: "sharing_display", priority: 19},
		subscription{event: "the_excerpt", callbackID: "sharing_display", priority: 19},
	)

	if got := DisableSharingLinks(reg); got != 2 {
		t.Errorf("DisableSharingLinks() = %d, want 2", got)
	}

	if len(reg.subscriptions) != 0 {
		t.Errorf("expected all sharing subscriptions removed, %d remain", len(reg.subscriptions))
	}
}

func TestDisableSharingLinks_TargetsExactCallbackAndPriority(t *testing.T) {
	reg := newMockRegistry()

	DisableSharingLinks(reg)

	if len(reg.calls) != 2 {
		t.Fatalf("expected 2 unsubscribe calls, got %d", len(reg.calls))
	}

	wantEvents := map[string]bool{"the_content": true, "the_excerpt": true}
	for _, call := range reg.calls {
		if !wantEvents[call.event] {
			t.Errorf("unexpected event %q", call.event)
		}
		if call.callbackID != "sharing_display" {
			t.Errorf("unexpected callback id %q", call.callbackID)
		}
		if call.priority != 19 {
			t.Errorf("unexpected priority %d", call.priority)
		}
	}
}

func TestDisableSharingLinks_PluginNotRegistered(t *testing.T) {
	// A different priority must not match; nothing is removed.
	reg := newMockRegistry(
		subscription{event: "the_content", callbackID: "sharing_display", priority: 10},
	)

	if got := DisableSharingLinks(reg); got != 0 {
		t.Errorf("DisableSharingLinks() = %d, want 0", got)
	}

	if len(reg.subscriptions) != 1 {
		t.Error("expected unrelated subscription to survive")
	}
}
