// Package http implements the HTTP transport of the serve command.
//
// It serves the configured domain list in the remote-list text format,
// checks page URLs against the allow-list, and reads and writes settings by
// key. Request tracing, access logging and response compression are
// handled here before requests reach the service layer.
package http
