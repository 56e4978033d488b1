package config

import (
	"errors"
	"flag"
	"io"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a HTTP transport address in format [host]:[port] (stdio when omitted)
//	-d Bear database path
//	-c/-config json file path with configs
//	-launcher URI launcher command (e.g. "open", "xdg-open")
//	-launcher-timeout launcher timeout (e.g. "10s"); 0 means unbounded
//	-scheme Bear URL scheme
//	-shutdown-timeout HTTP shutdown timeout (e.g. "5s")
//	-log-level log level (trace, debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("mcp-bear", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databasePath string
	var jsonConfigPath string
	var launcherCommand string
	var launcherTimeout time.Duration
	var scheme string
	var shutdownTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "HTTP transport address host:port")
	fs.StringVar(&databasePath, "d", "", "Bear database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&launcherCommand, "launcher", "", "URI launcher command")
	fs.DurationVar(&launcherTimeout, "launcher-timeout", 0, "Launcher timeout (e.g., 10s)")
	fs.StringVar(&scheme, "scheme", "", "Bear URL scheme")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "HTTP shutdown timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Path: databasePath,
			},
		},
		Launcher: Launcher{
			Command: launcherCommand,
			Scheme:  scheme,
			Timeout: launcherTimeout,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
