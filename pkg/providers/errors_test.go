package providers_test

import (
	"errors"
	"testing"

	"github.com/andreixhz/tools-cli/pkg/providers"
	"github.com/stretchr/testify/assert"
)

var errStart = errors.New("exec: not started")

func TestClusterOperationError_Message(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  *providers.ClusterOperationError
		want string
	}{
		"stderr": {
			err:  &providers.ClusterOperationError{Op: "creation", Cluster: "alpha", Stderr: "port in use\n"},
			want: "cluster creation failed for 'alpha': port in use",
		},
		"falls back to cause": {
			err:  &providers.ClusterOperationError{Op: "deletion", Cluster: "alpha", Err: errStart},
			want: "cluster deletion failed for 'alpha': exec: not started",
		},
		"no cluster": {
			err:  &providers.ClusterOperationError{Op: "listing", Stderr: "docker not running"},
			want: "cluster listing failed: docker not running",
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestClusterOperationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &providers.ClusterOperationError{Op: "creation", Err: errStart}

	assert.ErrorIs(t, err, errStart)
}
