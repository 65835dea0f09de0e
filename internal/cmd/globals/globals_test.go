package globals_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/internal/cmd/globals"
)

func TestAddFlags(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	flags := globals.AddFlags(root)

	require.NoError(t, root.PersistentFlags().Parse([]string{"-o", "json", "-q", "--no-color"}))

	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Quiet)
	assert.True(t, flags.NoColor)
	assert.False(t, flags.Verbose)
}

func TestFormatAlias(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	flags := globals.AddFlags(root)

	require.NoError(t, root.PersistentFlags().Parse([]string{"--format", "yaml"}))
	assert.Equal(t, "yaml", flags.Output)
}

func TestParseWalksToRoot(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)
	globals.AddFlags(root)

	require.NoError(t, root.PersistentFlags().Parse([]string{"-o", "wide", "-v"}))

	flags, err := globals.Parse(child)
	require.NoError(t, err)
	assert.Equal(t, "wide", flags.Output)
	assert.True(t, flags.Verbose)
}
