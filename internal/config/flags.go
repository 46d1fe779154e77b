package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the global configuration flags from args and returns
// the resulting config layer plus the remaining positional arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d storage DSN
//	-encrypt-storage seal stored values
//	-c/-config json file path with configs
//	-password-hash cryptographer password
//	-salt-key cryptographer salt
//	-iv cryptographer initialization vector
//	-seal-passphrase encrypted storage passphrase
//	-seal-salt encrypted storage salt
//	-domains-file domain list document
//	-domains-name domain list name
//	-remote-domains remote domain list URL
//	-separators remote list separators, semicolon separated
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-autosave-interval settings auto-save interval
//	-domains-refresh-interval remote domain list refresh interval
//	-v verbose logging
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("prefs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var cfg StructuredConfig
	var separators string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "Storage DSN")
	fs.BoolVar(&cfg.Storage.Encrypt, "encrypt-storage", false, "Seal stored values")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Crypto.PasswordHash, "password-hash", "", "Cryptographer password")
	fs.StringVar(&cfg.Crypto.SaltKey, "salt-key", "", "Cryptographer salt")
	fs.StringVar(&cfg.Crypto.IV, "iv", "", "Cryptographer initialization vector")
	fs.StringVar(&cfg.Crypto.SealPassphrase, "seal-passphrase", "", "Encrypted storage passphrase")
	fs.StringVar(&cfg.Crypto.SealSalt, "seal-salt", "", "Encrypted storage salt")
	fs.StringVar(&cfg.Domains.ListFile, "domains-file", "", "Domain list document")
	fs.StringVar(&cfg.Domains.Name, "domains-name", "", "Domain list name")
	fs.StringVar(&cfg.Domains.RemoteListURL, "remote-domains", "", "Remote domain list URL")
	fs.StringVar(&separators, "separators", "", "Remote list separators, semicolon separated")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Workers.AutoSaveInterval, "autosave-interval", 0, "Settings auto-save interval")
	fs.BoolVar(&cfg.App.Verbose, "v", false, "Verbose logging")
	fs.DurationVar(&cfg.Workers.DomainsRefreshInterval, "domains-refresh-interval", 0, "Remote domain list refresh interval")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	if separators != "" {
		cfg.Domains.Separators = strings.Split(separators, ";")
	}

	return &cfg, fs.Args(), nil
}

// unescapeSeparators turns the two-character sequences \n, \r and \t into
// control characters so separators can be given on a command line.
func unescapeSeparators(in []string) []string {
	if in == nil {
		return nil
	}
	r := strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\t`, "\t")
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = r.Replace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

var _ flag.Value = (*NetAddress)(nil)
