package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "1.2.3", b: "1.2.3", want: 0},
		{name: "equal with v prefix", a: "v1.2.3", b: "1.2.3", want: 0},
		{name: "patch newer", a: "1.2.4", b: "1.2.3", want: 1},
		{name: "minor older", a: "1.1.9", b: "1.2.0", want: -1},
		{name: "major wins", a: "2.0.0", b: "1.9.9", want: 1},
		{name: "suffix ignored", a: "1.2.3-rc1", b: "1.2.3", want: 0},
		{name: "dev older than release", a: "dev", b: "0.0.1", want: -1},
		{name: "commit hash older than release", a: "a1b2c3d4e5f", b: "0.0.1", want: -1},
		{name: "both dev", a: "dev", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestIsNewer(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNewer("1.0.0", "v1.1.0"))
	assert.False(t, IsNewer("1.1.0", "v1.1.0"))
	assert.True(t, IsNewer("dev", "v0.1.0"))
}

func TestClientCheck(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/mrz1836/signet/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "v1.2.0", "name": "v1.2.0"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	info, err := client.Check(context.Background(), "mrz1836", "signet", "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "v1.2.0", info.Latest)
	assert.True(t, info.IsNewer)
}

func TestClientCheckAPIFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Check(context.Background(), "mrz1836", "signet", "1.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReleaseLookupFailed)
}
