// Command angelc drives the three-pass compiler as a standalone tool,
// the same role cmd/nilaway/main.go plays for the teacher: lift the
// config surface to top-level flags, load an optional YAML options
// file, and delegate the real work to the library.
//
// Lexing and parsing an AngelScript source file into an ast.Script is
// out of this repository's scope (spec §1) - no parser ships here. A
// host embeds this tool (or the compiler package directly) by wiring a
// Frontend that turns its own source text into an *ast.Script; without
// one registered, angelc reports that plainly rather than guessing at
// a source format.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alexparlett/angelscript-go/internal/config"
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ffi"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/compiler"
	"gopkg.in/yaml.v3"
)

var (
	_configPath  string
	_prettyPrint bool
	_groupErrors bool
	_isolate     bool
	_maxParallel int
)

func main() {
	flag.StringVar(&_configPath, "config", "", "path to a YAML options file (see internal/config.Options)")
	flag.BoolVar(&_prettyPrint, "pretty", false, "colorize diagnostic output")
	flag.BoolVar(&_groupErrors, "group-errors", true, "sets Options.GroupErrorMessages, which no pass reads")
	flag.BoolVar(&_isolate, "isolate-units", true, "give each unit its own $unit_N namespace")
	flag.IntVar(&_maxParallel, "max-parallel", 1, "bounded worker count for CompileUnits")
	flag.Parse()

	opts, err := loadOptions(_configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "angelc: %v\n", err)
		os.Exit(1)
	}

	frontend := RegisteredFrontend()
	if frontend == nil {
		fmt.Fprintln(os.Stderr, "angelc: no Frontend registered; this build has no source parser wired in (see package doc)")
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: angelc [flags] <source-file>...")
		os.Exit(2)
	}

	units := make([]compiler.Unit, 0, len(args))
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "angelc: %v\n", err)
			os.Exit(1)
		}
		script, err := frontend.Parse(path, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "angelc: parsing %s: %v\n", path, err)
			os.Exit(1)
		}
		units = append(units, compiler.Unit{Name: path, Size: len(src), Script: script})
	}

	fset := ident.NewFileSet()
	tree := registry.New(hostRegistry())

	results := compiler.CompileUnits(tree, fset, opts, units)

	failed := false
	for _, r := range results {
		fmt.Println(compiler.Summary(r))
		for _, d := range r.Diagnostics {
			fmt.Println(renderDiagnostic(d, opts.PrettyPrint))
			if !d.Kind.IsWarning() {
				failed = true
			}
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadOptions(path string) (config.Options, error) {
	opts := config.Default()
	opts.PrettyPrint = _prettyPrint
	opts.GroupErrorMessages = _groupErrors
	opts.IsolateUnits = _isolate
	opts.MaxParallelUnits = _maxParallel

	if path == "" {
		return opts, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// hostRegistry returns the FFI surface angelc mounts under `$ffi`. A
// standalone CLI build has no embedding host, so it runs with nothing
// pre-registered there.
func hostRegistry() ffi.HostRegistry {
	return ffi.Empty{}
}

// renderDiagnostic formats one diagnostic as a single line, optionally
// wrapping the kind name in ANSI color the way nilaway.go's
// prettyPrintErrorMessage highlights its own error text.
func renderDiagnostic(d diag.Diagnostic, pretty bool) string {
	kind := d.Kind.String()
	if pretty {
		color := 31 // red
		if d.Kind.IsWarning() {
			color = 33 // yellow
		}
		kind = fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, kind)
	}
	return fmt.Sprintf("  %s: %s", kind, d.Message)
}
