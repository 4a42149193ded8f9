package build

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/reoring/ulna/config"
	"github.com/reoring/ulna/internal/cli"
)

// Builder compiles one project from its validated configuration.
type Builder struct {
	log       *cli.Logger
	cfg       config.Config
	binaryDir string
}

// New returns a Builder placing the produced binary under binaryDir.
func New(log *cli.Logger, cfg config.Config, binaryDir string) *Builder {
	return &Builder{log: log, cfg: cfg, binaryDir: binaryDir}
}

// Run compiles the project binary in the given mode. On compiler failure the
// partial binary is removed and the compiler's stderr is logged under the
// compiler's name.
func (b *Builder) Run(ctx context.Context, mode Mode) error {
	name := b.cfg.Build.Compiler
	if name == "" {
		name = DefaultCompiler
	}
	compiler, ok := Options[name]
	if !ok {
		// The compiler-name predicate admits only registered names, so this
		// is unreachable for validated configurations.
		return fmt.Errorf("build: unsupported compiler %q", name)
	}

	argv := Command(compiler, KindProgram, b.cfg.Program.Name, CommandOptions{
		Mode:            mode,
		BinaryDir:       b.binaryDir,
		Dependencies:    b.cfg.Dependencies.IncludeShared,
		AdditionalFlags: b.cfg.Build.AdditionalFlags,
	})
	b.log.Info(strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		b.log.Error(b.cfg.Program.Name + " failed to build")
		if out := stderr.String(); out != "" {
			// e.g. gcc: <gcc error message>
			b.log.Error(indent(out, name+": "))
		}
		b.removeBinary()
		return fmt.Errorf("build %s: %w", b.cfg.Program.Name, err)
	}
	return nil
}

// removeBinary deletes the produced binary; called upon build failure.
func (b *Builder) removeBinary() {
	_ = os.Remove(filepath.Join(b.binaryDir, b.cfg.Program.Name))
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
