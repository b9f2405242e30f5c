package domain

// Lease is the association between a session and the worker instance leased for it.
// Stored by MySessions as a hash: url, hostname, port and the optional api it was leased from.
type Lease struct {
	SessionID     string // client-facing session handle
	ManagementURL string // URL used to release the instance
	Hostname      string // worker host
	Port          int    // worker port
	EndpointURL   string // management API the instance came from; empty for leases written without it
}

// Instance is the descriptor returned by a management API when an instance is created or deleted.
// Only ManagementURL, Hostname and Port are used by the registry; the rest is passed through.
type Instance struct {
	ID            int
	ManagementURL string
	DockerID      string
	Hostname      string
	Port          int
	VNCURL        string
	CreatedAt     string
	ExpiresAt     string
}

// CachedFile is a remote file cached by a management API next to its instances.
type CachedFile struct {
	URL      string // original location
	Filename string // path of the local copy on the management host
}
