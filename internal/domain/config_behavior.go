package domain

import (
	"net"
	"strconv"
	"time"
)

// ListenAddr joins host and port for net.Listen.
func (s ServerSettings) ListenAddr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ShutdownGrace is how long in-flight requests get after a stop signal.
// Non-positive values fall back to the default.
func (s ServerSettings) ShutdownGrace() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return DefaultShutdownTimeout
	}
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// AllowsAnyOrigin reports whether CORS is left open, which is the case when
// no origins are listed or "*" is among them.
func (s ServerSettings) AllowsAnyOrigin() bool {
	if len(s.CORSOrigins) == 0 {
		return true
	}
	for _, origin := range s.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
