package interfaces

// Metrics records session lifecycle events.
//
//go:generate moq -stub -out mock/metrics.go -pkg mock . Metrics
type Metrics interface {
	SessionCreated(endpointURL string)
	SessionDeleted()
	EndpointExhausted(endpointURL string)
	CapacityExhausted()
	AcquireFailed(endpointURL string)
	ReleaseFailed()
}
