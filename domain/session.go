package domain

import "time"

const (
	// SessionKeyPrefix namespaces lease keys in the store; enumeration by this prefix yields only leases.
	SessionKeyPrefix = "session"
	// EndpointsKey is the store key of the management API pool.
	EndpointsKey = "apis"
	// DefaultReservationTime is how long a lease stays valid after creation or refresh.
	DefaultReservationTime = time.Minute
)
