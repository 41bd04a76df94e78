// Package config hosts both non-user-configurable development
// parameters and the user-facing Options struct, mirroring the split
// in nilaway/config between its const.go and the rest of the package.
package config

// MaxTopoSortPasses is not read by any pass: the Completion pass
// orders classes with a depth-first walk that has no pass limit, and
// inheritance cycles are reported by its separate cycle check.
const MaxTopoSortPasses = 4096

// NoInferDocString, if present in a unit's leading doc comment, could
// suppress some future inference-heavy diagnostics the same way
// nilaway's NilAwayNoInferString gates its own inference; reserved for
// parity with the teacher's config surface, not yet consumed by any
// pass in this spec.
const NoInferDocString = "<angelc no strict-mode>"

// Options is the user-facing compiler configuration, loadable from a
// YAML file by cmd/angelc (see SPEC_FULL.md AMBIENT STACK).
type Options struct {
	// GroupErrorMessages mirrors the name of nilaway's
	// Config.GroupErrorMessages. No pass and no renderer reads it:
	// every diagnostic is reported individually whatever its value.
	GroupErrorMessages bool `yaml:"group_error_messages"`

	// PrettyPrint enables ANSI-colored diagnostic rendering in the CLI.
	PrettyPrint bool `yaml:"pretty_print"`

	// IsolateUnits enables the `$unit_N` namespace isolation scheme of
	// spec §3.2 for multi-unit compilation. When false, all units share
	// one flat root namespace (useful for single-unit/REPL-style use).
	IsolateUnits bool `yaml:"isolate_units"`

	// MaxParallelUnits bounds the worker pool size used by
	// compiler.CompileUnits for independent compilation units (spec
	// §5: "Parallelism across independent units is permitted by
	// construction ... but not required"). Zero or negative means
	// compile sequentially.
	MaxParallelUnits int `yaml:"max_parallel_units"`

	// ConstantPoolCompactionBytes is the uncompressed size of all
	// constant-pool entries (strings, numbers and hashes alike) above
	// which internal/bytecode.ConstantPool
	// switches to S2-compressed storage (see SPEC_FULL.md DOMAIN
	// STACK). Zero disables compaction.
	ConstantPoolCompactionBytes int `yaml:"constant_pool_compaction_bytes"`
}

// Default returns the zero-tuning default Options.
func Default() Options {
	return Options{
		GroupErrorMessages:          true,
		IsolateUnits:                true,
		MaxParallelUnits:            1,
		ConstantPoolCompactionBytes: 64 * 1024,
	}
}
