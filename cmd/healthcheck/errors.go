package main

import "fmt"

// probeError reports a non-200 answer from the health endpoint.
type probeError struct {
	status  int
	message string
}

func (e *probeError) Error() string {
	return fmt.Sprintf("unhealthy: status %d: %s", e.status, e.message)
}
