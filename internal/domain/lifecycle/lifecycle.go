// Package lifecycle holds shared timing values for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
