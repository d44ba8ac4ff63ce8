package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a local status server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-vendor-address vendor API base URL
//	-request-timeout vendor request timeout (e.g., "20s")
//	-sync-interval automatic sync period (e.g., "15m")
//	-run-timeout whole run budget (e.g., "30s")
//	-once run a single sync and exit
//	-email vendor account email
//	-secret-key local sealing secret
//	-log-file log file path
//	-time-zone device IANA time zone
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var vendorAddress string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var runTimeout time.Duration
	var runOnce bool
	var email string
	var secretKey string
	var logFile string
	var timeZone string

	fs.Var(&serverAddress, "a", "Status server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&vendorAddress, "vendor-address", "", "Vendor API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Vendor request timeout (e.g., 20s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Automatic sync interval (e.g., 15m)")
	fs.DurationVar(&runTimeout, "run-timeout", 0, "Sync run budget (e.g., 30s)")
	fs.BoolVar(&runOnce, "once", false, "Run a single sync and exit")
	fs.StringVar(&email, "email", "", "Vendor account email")
	fs.StringVar(&secretKey, "secret-key", "", "Local sealing secret")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&timeZone, "time-zone", "", "Device IANA time zone")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
			Email:     email,
			LogFile:   logFile,
		},
		Device: Device{
			TimeZone: timeZone,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    vendorAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			RunTimeout:   runTimeout,
			RunOnce:      runOnce,
		},
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
