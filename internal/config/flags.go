package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags and returns them as a
// configuration source map keyed by the variable names the env layer
// uses, so flags and environment merge through the same resolver.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-project-id remote project identifier
//	-store-url document store base URL
//	-identity-url identity provider base URL
//	-ai-model completion model name
//	-web-config web config JSON blob
func ParseFlags() map[string]string {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var projectID string
	var storeURL string
	var identityURL string
	var aiModel string
	var webConfig string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&projectID, "project-id", "", "Remote project ID")
	flag.StringVar(&storeURL, "store-url", "", "Document store base URL")
	flag.StringVar(&identityURL, "identity-url", "", "Identity provider base URL")
	flag.StringVar(&aiModel, "ai-model", "", "Completion model name")
	flag.StringVar(&webConfig, "web-config", "", "Web config JSON blob")

	flag.Parse()

	timeout := ""
	if requestTimeout != 0 {
		timeout = requestTimeout.String()
	}

	// empty values count as undefined in the source layer
	return map[string]string{
		envPrefix + "SERVER_ADDRESS":         serverAddress.String(),
		envPrefix + "SERVER_REQUEST_TIMEOUT": timeout,
		envPrefix + "PROJECT_ID":             projectID,
		envPrefix + "STORE_BASE_URL":         storeURL,
		envPrefix + "IDENTITY_BASE_URL":      identityURL,
		envPrefix + "AI_MODEL":               aiModel,
		envPrefix + "WEB_CONFIG":             webConfig,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
