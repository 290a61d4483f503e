package domain

// Label keys used by dockenv for engine resources.
const (
	LabelManaged = "dockenv.managed"
	LabelSession = "dockenv.session"
)

// ManagedLabels returns the labels attached to every resource created in a session.
func ManagedLabels(sessionID string) map[string]string {
	labels := map[string]string{LabelManaged: "true"}
	if sessionID != "" {
		labels[LabelSession] = sessionID
	}
	return labels
}

// MergeLabels returns a new map with extra applied over base.
func MergeLabels(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
