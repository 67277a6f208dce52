// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import "time"

// Clock abstracts the current time so handlers can be tested at fixed instants
type Clock interface {
	Now() time.Time
}

// Real reads the system clock, in UTC
type Real struct{}

func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
