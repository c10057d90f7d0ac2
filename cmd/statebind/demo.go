package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/statebind/internal/demo"
	"github.com/vango-dev/statebind/pkg/dom"
)

func demoCmd() *cobra.Command {
	var clicks int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the counter against an in-memory element",
		Long: `Mount the counter demo on an in-memory element, fire click events
at it and print every render.

Examples:
  statebind demo
  statebind demo --clicks=10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), clicks)
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 3, "Number of click events to fire")

	return cmd
}

// printingNode echoes every render to w.
type printingNode struct {
	*dom.Node
	w io.Writer
}

func (p printingNode) SetText(text string) {
	p.Node.SetText(text)
	fmt.Fprintf(p.w, "  render: %s\n", text)
}

func runDemo(w io.Writer, clicks int) error {
	if clicks < 0 {
		return fmt.Errorf("--clicks must not be negative, got %d", clicks)
	}

	node := dom.NewNode("counter")
	demo.Mount(printingNode{Node: node, w: w})

	for i := 0; i < clicks; i++ {
		node.DispatchEvent(dom.Event{Type: dom.EventClick, Target: demo.TargetIncrement})
	}

	fmt.Fprintf(w, "final count: %s\n", node.Text())
	return nil
}
