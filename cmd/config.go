package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mysessions/adapters/myredis"
	"mysessions/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envRedisAddr         = "REDIS_ADDR"
	envHTTPPort          = "SERVICE_PORT_HTTP"
	envGRPCPort          = "SERVICE_PORT_GRPC"
	envReservationTime   = "RESERVATION_TIME"
	envManagementTimeout = "MANAGEMENT_TIMEOUT"
	envManagementAPIs    = "MANAGEMENT_APIS"
	envConfigPath        = "CONFIG_PATH"
)

const defaultManagementTimeout = 10 * time.Second

// MySessionsConfig holds the service configuration loaded by LoadConfig.
// GRPCPort 0 disables the gRPC health server. ManagementAPIs are registered at startup.
type MySessionsConfig struct {
	Redis             myredis.RedisConfig
	HTTPPort          int
	GRPCPort          int
	ReservationTime   time.Duration
	ManagementTimeout time.Duration
	ManagementAPIs    []string
}

// yamlConfig is the root struct of the optional CONFIG_PATH file.
type yamlConfig struct {
	ManagementAPIs []string `yaml:"management_apis"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig loads configuration from environment variables and the optional YAML file at CONFIG_PATH.
// REDIS_ADDR and SERVICE_PORT_HTTP are required. RESERVATION_TIME defaults to 1m and MANAGEMENT_TIMEOUT to 10s.
// Management APIs from MANAGEMENT_APIS (comma-separated) and the YAML management_apis list are merged.
func LoadConfig() (*MySessionsConfig, error) {
	redisAddr := os.Getenv(envRedisAddr)
	if redisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}

	httpPortStr := os.Getenv(envHTTPPort)
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := parsePort(envHTTPPort, httpPortStr)
	if err != nil {
		return nil, err
	}

	var grpcPort int
	if grpcPortStr := strings.TrimSpace(os.Getenv(envGRPCPort)); grpcPortStr != "" && grpcPortStr != "0" {
		grpcPort, err = parsePort(envGRPCPort, grpcPortStr)
		if err != nil {
			return nil, err
		}
	}

	reservationTime, err := parseDuration(envReservationTime, domain.DefaultReservationTime)
	if err != nil {
		return nil, err
	}
	// EXPIRE has second resolution
	if reservationTime < time.Second {
		return nil, fmt.Errorf("%s must be at least 1s, got %s", envReservationTime, reservationTime)
	}

	managementTimeout, err := parseDuration(envManagementTimeout, defaultManagementTimeout)
	if err != nil {
		return nil, err
	}

	apis := splitList(os.Getenv(envManagementAPIs))
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, absErr := filepath.Abs(configPath)
			if absErr != nil {
				return nil, absErr
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		for _, api := range raw.ManagementAPIs {
			if api = strings.TrimSpace(api); api != "" {
				apis = append(apis, api)
			}
		}
	}

	return &MySessionsConfig{
		Redis: myredis.RedisConfig{
			Addr: redisAddr,
		},
		HTTPPort:          httpPort,
		GRPCPort:          grpcPort,
		ReservationTime:   reservationTime,
		ManagementTimeout: managementTimeout,
		ManagementAPIs:    apis,
	}, nil
}

func parsePort(name, value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", name, port)
	}
	return port, nil
}

func parseDuration(name string, def time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
