package messaging

import "time"

type NatsServerOpt func(*NatsServer)

// WithStartTimeout bounds how long Start waits for the embedded broker
// to accept connections.
func WithStartTimeout(d time.Duration) NatsServerOpt {
	return func(s *NatsServer) {
		s.startupTimeout = d
	}
}

// WithHost sets the broker's listen address.
func WithHost(host string) NatsServerOpt {
	return func(s *NatsServer) {
		s.host = host
	}
}

// WithPort sets the broker's listen port. Zero falls through to the
// nats default; -1 asks the OS for a free port.
func WithPort(port int) NatsServerOpt {
	return func(s *NatsServer) {
		s.port = port
	}
}

// WithServerName labels the broker in monitoring output.
func WithServerName(name string) NatsServerOpt {
	return func(s *NatsServer) {
		s.name = name
	}
}
