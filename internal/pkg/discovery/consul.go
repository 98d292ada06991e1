package discovery

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/consul/api"
)

type ConsulClient struct {
	client *api.Client
}

func NewConsulClient(address string) (*ConsulClient, error) {
	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	return &ConsulClient{client: client}, nil
}

// RegisterService announces the HTTP listener with a /health check.
func (c *ConsulClient) RegisterService(serviceID, serviceName, listenAddr string) error {
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = serviceName
	}

	port, err := parsePort(listenAddr)
	if err != nil {
		return err
	}

	registration := &api.AgentServiceRegistration{
		ID:      serviceID,
		Name:    serviceName,
		Address: hostname,
		Port:    port,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", hostname, port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}

	return c.client.Agent().ServiceRegister(registration)
}

func (c *ConsulClient) DeregisterService(serviceID string) error {
	return c.client.Agent().ServiceDeregister(serviceID)
}

// parsePort accepts "8083", ":8083" or "host:8083".
func parsePort(listenAddr string) (int, error) {
	portStr := listenAddr
	if strings.Contains(listenAddr, ":") {
		_, p, err := net.SplitHostPort(listenAddr)
		if err != nil {
			return 0, fmt.Errorf("invalid listen address %q: %w", listenAddr, err)
		}
		portStr = p
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port in %q: %w", listenAddr, err)
	}
	return port, nil
}
