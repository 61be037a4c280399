package providers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotImplemented is returned by providers that exist only as placeholders.
	ErrNotImplemented = errors.New("provider not implemented")

	// ErrClusterNotFound is returned when a named cluster does not exist.
	ErrClusterNotFound = errors.New("cluster not found")
)

// ClusterOperationError reports a failed call to the tool backing a provider.
type ClusterOperationError struct {
	// Op is the failed operation, e.g. "creation" or "deletion".
	Op string
	// Cluster is the cluster name, empty for list operations.
	Cluster string
	// Stderr is the error text reported by the external tool.
	Stderr string
	Err    error
}

func (e *ClusterOperationError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}

	msg := "cluster " + e.Op + " failed"
	if e.Cluster != "" {
		msg = fmt.Sprintf("cluster %s failed for '%s'", e.Op, e.Cluster)
	}

	if detail != "" {
		msg += ": " + detail
	}

	return msg
}

func (e *ClusterOperationError) Unwrap() error {
	return e.Err
}
