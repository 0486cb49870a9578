package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Demo walks through the basic scenarios: a single section, a composed
// organization, an attach that never checks the concrete variant, and a rejected
// attach to a section. With withMetrics it ends with the collected Prometheus
// metrics in text format.
func Demo(ctx context.Context, w io.Writer, o Options, withMetrics bool) error {
	logger, err := createLogger(o.LogLevel)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "A single section:")
	section := domain.NewLeaf(4)
	report(w, section)

	fmt.Fprintln(w, "A composed organization:")
	president := domain.NewComposite(1)
	tree, err := orgtree.New(president,
		orgtree.WithLogger(logger),
		orgtree.WithHooks(createDebugHooks(logger)),
		orgtree.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	dep1 := domain.NewComposite(2)
	dep2 := domain.NewComposite(2)
	steps := []struct{ parent, child domain.Node }{
		{dep1, domain.NewLeaf(4)},
		{dep1, domain.NewLeaf(5)},
		{dep2, domain.NewLeaf(6)},
		{president, dep1},
		{president, dep2},
	}
	for _, step := range steps {
		if err := tree.Attach(ctx, step.parent, step.child); err != nil {
			return err
		}
	}
	if err := reportTree(ctx, w, tree); err != nil {
		return err
	}

	fmt.Fprintln(w, "Attaching without checking the variant:")
	if president.CanOwnChildren() {
		if err := tree.Attach(ctx, president, section); err != nil {
			return err
		}
	}
	if err := reportTree(ctx, w, tree); err != nil {
		return err
	}

	fmt.Fprintln(w, "Attaching to a section:")
	err = tree.Attach(ctx, section, domain.NewLeaf(3))
	switch {
	case errors.Is(err, domain.ErrUnsupportedOperation):
		fmt.Fprintln(w, "  rejected: a section cannot own children")
	case err != nil:
		return err
	default:
		return errors.New("attach to a section unexpectedly succeeded")
	}

	if withMetrics {
		fmt.Fprintln(w)
		return writeMetrics(w, reg)
	}
	return nil
}

func report(w io.Writer, n domain.Node) {
	fmt.Fprintf(w, "  name:  %s\n", n.DisplayName())
	fmt.Fprintf(w, "  total: %d\n\n", n.AggregateValue())
}

func reportTree(ctx context.Context, w io.Writer, tree *orgtree.Tree) error {
	name, err := tree.DisplayName(ctx)
	if err != nil {
		return err
	}
	total, err := tree.AggregateValue(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  name:  %s\n", name)
	fmt.Fprintf(w, "  total: %d\n\n", total)
	return nil
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
