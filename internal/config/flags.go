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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a ops server address in format [host]:[port]
//	-b default budget ID
//	-base-url budget API base URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-sync-interval background refresh interval (e.g., "5m")
//	-max-age staleness threshold for cached collections (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var defaultBudget string
	var baseURL string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var maxAge time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Ops server net address host:port")
	flag.StringVar(&defaultBudget, "b", "", "Default budget ID")
	flag.StringVar(&baseURL, "base-url", "", "Budget API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background refresh interval (e.g., 5m)")
	flag.DurationVar(&maxAge, "max-age", 0, "Staleness threshold (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Budget: Budget{
			DefaultBudget:  defaultBudget,
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			MaxAge:       maxAge,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
