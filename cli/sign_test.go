package cli

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewave/hlsgate/token"
)

func TestSignCommand(t *testing.T) {
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"sign", "--secret", "s3cr3t", "--path", "/live/stream.m3u8", "--ttl", "1m"})
	require.NoError(t, root.Execute())

	line := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(line, "/live/stream.m3u8?exp="), line)

	u, err := url.Parse(line)
	require.NoError(t, err)

	// The minted URL must authorize against the same secret.
	auth := token.NewAuthorizer([]byte("s3cr3t"),
		token.WithClock(func() int64 { return time.Now().Unix() }))
	assert.Equal(t, token.Valid, auth.Authorize(u.EscapedPath(), u.Query()))
}

func TestSignCommand_RequiresSecret(t *testing.T) {
	t.Setenv("EDGE_SIGNING_SECRET", "")

	root := rootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"sign", "--path", "/live/stream.m3u8"})
	assert.ErrorContains(t, root.Execute(), "signing secret required")
}
