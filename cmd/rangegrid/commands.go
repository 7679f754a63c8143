package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/rangegrid/analysis"
	"github.com/lox/rangegrid/internal/config"
	"github.com/lox/rangegrid/internal/report"
	"github.com/lox/rangegrid/poker"
)

// CountCmd prints the combination totals of a range, and optionally whether
// concrete holdings fall inside it.
type CountCmd struct {
	Range    string   `arg:"" help:"Range notation, e.g. 'TT+,AKs,KQo'"`
	Holdings []string `name:"holding" help:"Check whether a holding such as AsKd is in the range (repeatable)" placeholder:"CARDS"`
}

func (cmd *CountCmd) Run(globals *Globals) error {
	logger, err := globals.stderrLogger("count")
	if err != nil {
		return err
	}
	return cmd.run(os.Stdout, logger)
}

func (cmd *CountCmd) run(w io.Writer, logger *log.Logger) error {
	sel, err := analysis.ParseRange(cmd.Range)
	if err != nil {
		return err
	}
	logger.Debug("Parsed range", "notation", cmd.Range, "hands", sel.Len())

	holdings := make([]poker.Combo, 0, len(cmd.Holdings))
	for _, s := range cmd.Holdings {
		c1, c2, err := poker.ParseHolding(s)
		if err != nil {
			return err
		}
		holdings = append(holdings, poker.Combo{A: c1, B: c2})
	}

	if err := report.WriteTotals(w, sel.String(), analysis.ComputeTotals(sel)); err != nil {
		return err
	}
	if len(holdings) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	return report.WriteHoldings(w, sel, holdings)
}

// ConeCmd prints the dominance set of a hand, optionally applying a cone
// toggle to a range.
type ConeCmd struct {
	Hand  string `arg:"" help:"Hand label, e.g. 'KQs'"`
	Apply string `help:"Toggle the hand and its cone against this range" placeholder:"RANGE"`
}

func (cmd *ConeCmd) Run(globals *Globals) error {
	logger, err := globals.stderrLogger("cone")
	if err != nil {
		return err
	}
	return cmd.run(os.Stdout, logger)
}

func (cmd *ConeCmd) run(w io.Writer, logger *log.Logger) error {
	h, err := poker.ParseHand(cmd.Hand)
	if err != nil {
		return err
	}

	cone := analysis.DominanceSet(h)
	logger.Debug("Computed dominance set", "hand", h, "size", cone.Len())
	fmt.Fprintf(w, "%s is dominated by %d hands\n\n", h, cone.Len())
	if err := report.WriteHands(w, cone.Hands()); err != nil {
		return err
	}

	if cmd.Apply == "" {
		return nil
	}

	sel, err := analysis.ParseRange(cmd.Apply)
	if err != nil {
		return err
	}
	result := analysis.ToggleWithDominance(h, sel)
	logger.Debug("Applied cone toggle", "before", sel.Len(), "after", result.Len())
	fmt.Fprintln(w)
	return report.WriteTotals(w, result.String(), analysis.ComputeTotals(result))
}

// CompareCmd compares the per-rank shares of two ranges.
type CompareCmd struct {
	First  string `arg:"" help:"First range"`
	Second string `arg:"" help:"Second range"`
}

func (cmd *CompareCmd) Run(globals *Globals) error {
	logger, err := globals.stderrLogger("compare")
	if err != nil {
		return err
	}
	return cmd.run(os.Stdout, logger)
}

func (cmd *CompareCmd) run(w io.Writer, logger *log.Logger) error {
	first, err := analysis.ParseRange(cmd.First)
	if err != nil {
		return fmt.Errorf("first range: %w", err)
	}
	second, err := analysis.ParseRange(cmd.Second)
	if err != nil {
		return fmt.Errorf("second range: %w", err)
	}
	logger.Debug("Comparing ranges", "first", first.Len(), "second", second.Len())
	return report.WriteComparison(w, analysis.ComputeTotals(first), analysis.ComputeTotals(second))
}

// HandsCmd lists the starting hands in grid order.
type HandsCmd struct {
	Class  string `help:"Only list one class" enum:"all,pair,suited,offsuit" default:"all"`
	Combos bool   `help:"List the concrete holdings of each hand"`
}

func (cmd *HandsCmd) Run(globals *Globals) error {
	logger, err := globals.stderrLogger("hands")
	if err != nil {
		return err
	}
	return cmd.run(os.Stdout, logger)
}

func (cmd *HandsCmd) run(w io.Writer, logger *log.Logger) error {
	var hands []poker.Hand
	for _, h := range poker.AllHands() {
		if cmd.Class == "all" || cmd.Class == "" || h.Class().String() == cmd.Class {
			hands = append(hands, h)
		}
	}
	logger.Debug("Listing hands", "class", cmd.Class, "count", len(hands), "combos", cmd.Combos)
	if cmd.Combos {
		return report.WriteHandCombos(w, hands)
	}
	return report.WriteHands(w, hands)
}

// InitCmd writes a config file holding the defaults.
type InitCmd struct {
	Force bool `help:"Overwrite an existing config file"`
}

func (cmd *InitCmd) Run(globals *Globals) error {
	if err := cmd.run(globals.Config); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", globals.Config)
	return nil
}

func (cmd *InitCmd) run(path string) error {
	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return config.Save(path, config.DefaultConfig())
}
