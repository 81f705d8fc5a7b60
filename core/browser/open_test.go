package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	t.Parallel()
	const url = "https://issues.example.com/browse/FOO-101"

	tests := []struct {
		goos string
		name string
		args []string
	}{
		{goos: "darwin", name: "open", args: []string{url}},
		{goos: "linux", name: "xdg-open", args: []string{url}},
		{goos: "windows", name: "rundll32", args: []string{"url.dll,FileProtocolHandler", url}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()
			name, args, err := command(tt.goos, url)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := command("plan9", "https://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operating system: plan9")

	_, _, err = command("linux", "")
	require.Error(t, err)
}
