package handlers

import (
	"mysessions/domain"
)

// toLease converts a domain lease to its API representation. An empty EndpointURL is omitted.
func toLease(lease domain.Lease) Lease {
	out := Lease{
		SessionId: lease.SessionID,
		Url:       lease.ManagementURL,
		Hostname:  lease.Hostname,
		Port:      lease.Port,
	}
	if lease.EndpointURL != "" {
		api := lease.EndpointURL
		out.Api = &api
	}
	return out
}

// toInstancesResponse converts domain leases to API response.
func toInstancesResponse(leases []domain.Lease) InstancesResponse {
	out := make([]Lease, 0, len(leases))
	for _, l := range leases {
		out = append(out, toLease(l))
	}
	return InstancesResponse{Instances: out}
}

func toSessionsResponse(ids []string) SessionsResponse {
	if ids == nil {
		ids = []string{}
	}
	return SessionsResponse{Sessions: ids}
}

func toApisResponse(urls []string) ApisResponse {
	if urls == nil {
		urls = []string{}
	}
	return ApisResponse{Apis: urls}
}

func toCachedFile(file domain.CachedFile) CachedFile {
	return CachedFile{
		Url:      file.URL,
		Filename: file.Filename,
	}
}
