// Package app wires the ban domain to its infrastructure: the request-path
// check service, the background refresher and the admin service used by the
// CLI.
package app
