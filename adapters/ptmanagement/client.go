// Package ptmanagement is the HTTP client of the instance management APIs that create and delete
// simulator instances.
package ptmanagement

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces"
	"mysessions/service"
)

const (
	instancesPath = "/instances"
	filesPath     = "/files"
)

// ManagementHTTP creates an interfaces.InstanceManager that talks to management APIs over HTTP:
// POST {endpoint}/instances, DELETE {instance url} and POST {endpoint}/files. Panics on nil client.
//
// The client is shared by every endpoint; its Timeout bounds each remote call (main uses MANAGEMENT_TIMEOUT).
// Requests are never retried.
func ManagementHTTP(client *http.Client) interfaces.InstanceManager {
	return &managementHTTP{
		client: helpers.NilPanic(client, "adapters.ptmanagement.client.go: http client is required"),
	}
}

type managementHTTP struct {
	client *http.Client
}

// instanceJSON is the instance representation of the management API.
type instanceJSON struct {
	ID           int    `json:"id"`
	URL          string `json:"url"`
	DockerID     string `json:"dockerId"`
	PacketTracer string `json:"packetTracer"` // host:port
	VNC          string `json:"vnc"`
	CreatedAt    string `json:"createdAt"`
	ExpiresAt    string `json:"expiresAt"`
}

type fileJSON struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// AcquireInstance performs POST endpointURL/instances.
//
// Returns: (instance, nil) on 200/201 with a parsable body; no_capacity on 503; transport_error on any other
// status, network error, invalid JSON or an instance without a usable host:port. An instance that has a url
// but no usable host:port is released (best effort) before returning.
func (m *managementHTTP) AcquireInstance(ctx context.Context, endpointURL string) (domain.Instance, error) {
	reqURL := strings.TrimSuffix(endpointURL, "/") + instancesPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return domain.Instance{}, service.NewTransportError("invalid management API url", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return domain.Instance{}, service.NewTransportError("management API unreachable", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusServiceUnavailable:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Instance{}, service.NewNoCapacityError("management API has no instance available", fmt.Errorf("POST %s returned %d", reqURL, resp.StatusCode))
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Instance{}, service.NewTransportError("management API create instance failed", fmt.Errorf("POST %s returned %d", reqURL, resp.StatusCode))
	}

	var raw instanceJSON
	if err := decodeBody(resp.Body, &raw); err != nil {
		return domain.Instance{}, service.NewTransportError("invalid instance in management API response", err)
	}

	instance := toInstance(raw)
	if instance.ManagementURL == "" {
		return domain.Instance{}, service.NewTransportError("invalid instance in management API response", fmt.Errorf("instance %d has no url", raw.ID))
	}
	if _, _, err := splitAddress(raw.PacketTracer); err != nil {
		// the instance is provisioned but unusable, hand it back
		if _, releaseErr := m.ReleaseInstance(ctx, instance.ManagementURL); releaseErr != nil {
			err = fmt.Errorf("%w; release of '%s' failed: %v", err, instance.ManagementURL, releaseErr)
		}
		return domain.Instance{}, service.NewTransportError("invalid instance in management API response", err)
	}

	return instance, nil
}

// ReleaseInstance performs DELETE managementURL.
//
// Returns: (deleted instance, nil) on 200 or 204 (an empty body yields an instance with only ManagementURL set);
// instance_not_found on 404; transport_error on any other status or network error.
func (m *managementHTTP) ReleaseInstance(ctx context.Context, managementURL string) (domain.Instance, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, managementURL, nil)
	if err != nil {
		return domain.Instance{}, service.NewTransportError("invalid instance url", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return domain.Instance{}, service.NewTransportError("management API unreachable", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Instance{}, service.NewInstanceNotFoundError("management API does not know the instance", fmt.Errorf("DELETE %s returned %d", managementURL, resp.StatusCode))
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Instance{}, service.NewTransportError("management API delete instance failed", fmt.Errorf("DELETE %s returned %d", managementURL, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Instance{}, service.NewTransportError("management API response read failed", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return domain.Instance{ManagementURL: managementURL}, nil
	}

	var raw instanceJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.Instance{}, service.NewTransportError("invalid instance in management API response", err)
	}
	instance := toInstance(raw)
	if instance.ManagementURL == "" {
		instance.ManagementURL = managementURL
	}
	return instance, nil
}

// CacheFile performs POST endpointURL/files with fileURL as plain text body.
//
// Returns: (file, nil) on 200/201; unresolvable_file_url on 400; transport_error otherwise.
func (m *managementHTTP) CacheFile(ctx context.Context, endpointURL string, fileURL string) (domain.CachedFile, error) {
	reqURL := strings.TrimSuffix(endpointURL, "/") + filesPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(fileURL))
	if err != nil {
		return domain.CachedFile{}, service.NewTransportError("invalid management API url", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return domain.CachedFile{}, service.NewTransportError("management API unreachable", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.CachedFile{}, service.NewUnresolvableFileURLError("file url cannot be resolved by the management API", fmt.Errorf("POST %s returned %d for '%s'", reqURL, resp.StatusCode, fileURL))
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.CachedFile{}, service.NewTransportError("management API cache file failed", fmt.Errorf("POST %s returned %d", reqURL, resp.StatusCode))
	}

	var raw fileJSON
	if err := decodeBody(resp.Body, &raw); err != nil {
		return domain.CachedFile{}, service.NewTransportError("invalid file in management API response", err)
	}
	return domain.CachedFile{URL: raw.URL, Filename: raw.Filename}, nil
}

func decodeBody(r io.Reader, v any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// toInstance maps the API representation to domain.Instance. An unparsable address leaves Hostname and Port empty.
func toInstance(raw instanceJSON) domain.Instance {
	host, port, _ := splitAddress(raw.PacketTracer)
	return domain.Instance{
		ID:            raw.ID,
		ManagementURL: raw.URL,
		DockerID:      raw.DockerID,
		Hostname:      host,
		Port:          port,
		VNCURL:        raw.VNC,
		CreatedAt:     raw.CreatedAt,
		ExpiresAt:     raw.ExpiresAt,
	}
}

func splitAddress(address string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, fmt.Errorf("invalid instance address '%s': %w", address, err)
	}
	if host == "" {
		return "", 0, fmt.Errorf("invalid instance address '%s': empty host", address)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid instance address '%s': bad port", address)
	}
	return host, port, nil
}
