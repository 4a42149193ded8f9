// Package build generates and runs compiler commands for a validated project
// configuration.
package build

import (
	"path/filepath"
	"slices"
	"strings"
)

// Mode selects the optimization profile for a build.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeRelease     Mode = "release"
)

// Modes lists the accepted --mode values.
var Modes = []Mode{ModeDevelopment, ModeRelease}

// ParseMode validates a mode string from the CLI.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if s == string(m) {
			return m, true
		}
	}
	return "", false
}

// SourceKind tells the compiler whether it is producing an object file or an
// executable.
type SourceKind int

const (
	KindProgram SourceKind = iota
	KindLibrary
)

// Compiler generates build arguments for one supported toolchain.
type Compiler interface {
	Name() string
	ModeFlags(mode Mode) []string
	KindArgs(kind SourceKind, sourceName, binaryDir string) []string
}

// Options maps compiler names to implementations. Extending this map must be
// matched by extending the compiler-name predicate's allowed set.
var Options = map[string]Compiler{
	"gcc": gcc{},
}

// DefaultCompiler is used when the build section leaves compiler unset.
const DefaultCompiler = "gcc"

// CommandOptions carries the per-build inputs for command generation.
type CommandOptions struct {
	Mode            Mode
	BinaryDir       string
	Dependencies    []string // shared objects linked into the binary
	AdditionalFlags []string
}

// Command assembles the full argv to compile sourceName: compiler name,
// kind arguments, the translation unit, linked objects, mode flags, then any
// user-supplied flags.
func Command(c Compiler, kind SourceKind, sourceName string, opts CommandOptions) []string {
	argv := []string{c.Name()}
	argv = append(argv, c.KindArgs(kind, sourceName, opts.BinaryDir)...)
	argv = append(argv, sourceName+".c")
	for _, dep := range opts.Dependencies {
		if !strings.HasSuffix(dep, ".o") {
			dep += ".o"
		}
		argv = append(argv, dep)
	}
	argv = append(argv, c.ModeFlags(opts.Mode)...)
	argv = append(argv, opts.AdditionalFlags...)
	return argv
}

// gcc is the GCC toolchain.
type gcc struct{}

var gccBaseFlags = []string{"-Wall", "-Wextra"}

func (gcc) Name() string { return "gcc" }

func (gcc) ModeFlags(mode Mode) []string {
	flags := slices.Clone(gccBaseFlags)
	switch mode {
	case ModeRelease:
		return append(flags, "-O2", "-march=native", "-mtune=native")
	default: // development
		return append(flags,
			"-O0", "-g2", "-Wpedantic", "-Werror",
			"-fsanitize=undefined,address",
		)
	}
}

func (gcc) KindArgs(kind SourceKind, sourceName, binaryDir string) []string {
	switch kind {
	case KindLibrary:
		return []string{"-c", "-o", sourceName + ".o"}
	default: // program
		return []string{"-o", filepath.Join(binaryDir, sourceName)}
	}
}
