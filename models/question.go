// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecencyWindow is how far back a publication still counts as recent.
const RecencyWindow = 24 * time.Hour

// Published reports whether q is visible at now. A question becomes visible
// the instant its pub date is reached.
func (q Question) Published(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently reports whether q was published within RecencyWindow
// before now. Both ends of the window are inclusive.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return q.Published(now) && !q.PubDate.Before(now.Add(-RecencyWindow))
}
