package config_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := config.Default()
	require.True(t, opts.GroupErrorMessages)
	require.True(t, opts.IsolateUnits)
	require.Equal(t, 1, opts.MaxParallelUnits)
	require.Equal(t, 64*1024, opts.ConstantPoolCompactionBytes)
	require.False(t, opts.PrettyPrint, "pretty-printing is off by default, enabled only via the CLI flag")
}

func TestOptionsYAMLTags(t *testing.T) {
	t.Parallel()

	yamlSrc := []byte("group_error_messages: false\nisolate_units: false\nmax_parallel_units: 4\nconstant_pool_compaction_bytes: 0\npretty_print: true\n")

	opts := config.Default()
	require.NoError(t, yaml.Unmarshal(yamlSrc, &opts))

	require.False(t, opts.GroupErrorMessages)
	require.False(t, opts.IsolateUnits)
	require.Equal(t, 4, opts.MaxParallelUnits)
	require.Equal(t, 0, opts.ConstantPoolCompactionBytes)
	require.True(t, opts.PrettyPrint)
}
