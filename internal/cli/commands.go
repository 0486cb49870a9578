package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/orgtree/internal/presentation/graph"
	"github.com/aretw0/orgtree/internal/presentation/tui"
	"github.com/aretw0/orgtree/pkg/adapters/file"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
	"golang.org/x/term"
)

// ErrInvalidDefinition is returned by Validate when problems were reported.
var ErrInvalidDefinition = errors.New("definition is invalid")

// Inspect prints the display name and totals of the tree, or the full node listing
// as JSON when asJSON is set.
func Inspect(ctx context.Context, w io.Writer, o Options, asJSON bool) error {
	s, err := openTree(ctx, o, nil)
	if err != nil {
		return err
	}
	defer s.close()

	infos, err := s.tree.Inspect(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	root := infos[0]
	depth := 0
	for _, info := range infos {
		depth = max(depth, info.Depth+1)
	}
	fmt.Fprintf(w, "Name:  %s\n", root.DisplayName)
	fmt.Fprintf(w, "Total: %d\n", root.AggregateValue)
	fmt.Fprintf(w, "Nodes: %d\n", len(infos))
	fmt.Fprintf(w, "Depth: %d\n", depth)
	return nil
}

// Graph prints the tree as a Mermaid diagram. Nodes labelled in highlight are
// emphasized.
func Graph(ctx context.Context, w io.Writer, o Options, highlight []string) error {
	s, err := openTree(ctx, o, nil)
	if err != nil {
		return err
	}
	defer s.close()

	infos, err := s.tree.Inspect(ctx)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if len(highlight) > 0 {
		wanted := make(map[string]bool, len(highlight))
		for _, label := range highlight {
			wanted[label] = true
		}
		overlay = &graph.GraphOverlay{}
		for _, info := range infos {
			if info.Label != "" && wanted[info.Label] {
				overlay.Highlighted = append(overlay.Highlighted, info.ID)
			}
		}
	}

	fmt.Fprint(w, graph.GenerateMermaid(infos, overlay))
	return nil
}

// Show prints the tree as a Markdown outline, rendered with glamour when w is a
// terminal and left raw otherwise (pipes, files).
func Show(ctx context.Context, w io.Writer, o Options) error {
	s, err := openTree(ctx, o, nil)
	if err != nil {
		return err
	}
	defer s.close()

	infos, err := s.tree.Inspect(ctx)
	if err != nil {
		return err
	}
	outline := tui.Outline(infos)

	width, ok := terminalWidth(w)
	if !ok {
		fmt.Fprint(w, outline)
		return nil
	}

	render, err := tui.NewRenderer(width)
	if err != nil {
		return err
	}
	out, err := render(outline)
	if err != nil {
		return fmt.Errorf("failed to render outline: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}

// Validate checks the definition and lists every problem found.
func Validate(ctx context.Context, w io.Writer, o Options) error {
	def, err := o.loadDefinition(ctx)
	if err != nil {
		return err
	}

	if err := schema.Validate(*def); err != nil {
		problems := schema.ValidationErrors(err)
		fmt.Fprintf(w, "Found %d problem(s):\n", len(problems))
		for _, p := range problems {
			fmt.Fprintf(w, "  - %v\n", p)
		}
		return ErrInvalidDefinition
	}

	root, _, err := schema.Build(*def)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Definition is valid: %d nodes, total %d\n", domain.Count(root), root.AggregateValue())
	return nil
}

// Export normalizes the definition (explicit kinds, labels kept) and writes it as
// YAML to out, or to w when out is empty.
func Export(ctx context.Context, w io.Writer, o Options, out string) error {
	s, err := openTree(ctx, o, nil)
	if err != nil {
		return err
	}
	defer s.close()

	def, err := s.tree.Snapshot(ctx)
	if err != nil {
		return err
	}

	if out != "" {
		if err := file.Save(out, def); err != nil {
			return err
		}
		s.logger.Info("Definition exported", "path", out)
		return nil
	}

	data, err := file.Marshal(def)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// terminalWidth reports the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

// Diff compares the definition with the one at other and prints every change.
// It reports whether any change was found.
func Diff(ctx context.Context, w io.Writer, o Options, other string) (bool, error) {
	def, err := o.loadDefinition(ctx)
	if err != nil {
		return false, err
	}
	otherDef, err := file.NewLoader(other).Load(ctx)
	if err != nil {
		return false, err
	}

	changes := schema.Diff(*def, *otherDef)
	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes")
		return false, nil
	}
	for _, c := range changes {
		fmt.Fprintln(w, c)
	}
	return true, nil
}
