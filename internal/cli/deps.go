package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/manifest"
	"github.com/jammission/jamsetup/internal/tui"
	"github.com/spf13/cobra"
)

// DepsCommand handles the deps command
type DepsCommand struct {
	fs  filesystem.FileSystem
	out io.Writer

	requirements string
}

// NewDepsCommand creates a new deps command
func NewDepsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &DepsCommand{
		fs: fs,
	}

	cobraCmd := &cobra.Command{
		Use:   "deps",
		Short: "Print the parsed dependency manifest",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.requirements, "requirements", "", "Dependency manifest path (default requirements.txt)")

	return cobraCmd
}

// Run executes the deps command
func (c *DepsCommand) Run(cmd *cobra.Command, args []string) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	proj, _, err := resolveProject(c.fs)
	if err != nil {
		return err
	}

	path := firstNonEmpty(c.requirements, proj.ManifestPath)
	m, err := manifest.Load(c.fs, path)
	if err != nil {
		return err
	}

	for _, req := range m.Requirements {
		name := req.Name
		if len(req.Extras) > 0 {
			name = fmt.Sprintf("%s[%s]", req.Name, strings.Join(req.Extras, ","))
		}

		line := fmt.Sprintf("%-28s %s", name, req.Constraint)
		if req.Marker != "" {
			line += tui.SubtleStyle.Render("  ; " + req.Marker)
		}
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}

	for _, opt := range m.Options {
		fmt.Fprintln(out, tui.SubtleStyle.Render(opt.Raw))
	}

	if dups := m.Duplicates(); len(dups) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s duplicate requirement(s): %s\n",
			tui.WarningStyle.Render("!"), strings.Join(dups, ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d requirement(s), %d passthrough option(s)\n",
		len(m.Requirements), len(m.Options))

	return nil
}
