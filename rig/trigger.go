package rig

// Trigger turns a monotonically changing token into one-shot events.
// The host bumps the token to request a capture; repeated renders with the
// same token fire nothing.
type Trigger struct {
	last uint64
}

// Fire returns true if token is non-zero and differs from the last token
// seen.
func (t *Trigger) Fire(token uint64) bool {
	if token == 0 || token == t.last {
		return false
	}
	t.last = token
	return true
}
