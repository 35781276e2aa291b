package theme

// FilterRegistry is the host rendering pipeline's subscription surface:
// named filter callbacks keyed by event name and priority. The helper only
// ever unsubscribes; it registers nothing.
type FilterRegistry interface {
	// Unsubscribe removes the callback registered under callbackID for the
	// named event at the given priority. It reports whether a callback was
	// actually removed.
	Unsubscribe(event string, callbackID string, priority int) bool
}

// The third-party sharing plugin auto-injects its links into rendered content
// and excerpts under this callback id and priority.
const (
	sharingCallbackID = "sharing_display"
	sharingPriority   = 19
)

// contentEvents are the rendering-pipeline events the sharing plugin hooks.
var contentEvents = []string{"the_content", "the_excerpt"}

// DisableSharingLinks unsubscribes the sharing plugin's auto-injected display
// callback from the content and excerpt events. It returns the number of
// subscriptions removed; zero means the plugin was not registered.
func DisableSharingLinks(reg FilterRegistry) int {
	removed := 0
	for _, event := range contentEvents {
		if reg.Unsubscribe(event, sharingCallbackID, sharingPriority) {
			removed++
		}
	}
	return removed
}
