// Package v1 implements the HTTP surface that Traefik's ForwardAuth
// middleware talks to: every request is screened by client address, and
// allowed requests get an empty 200.
package v1
