// Package uptime reports how long the host has been running.
package uptime
