package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"tilelevel/internal/assets"
	"tilelevel/internal/graphics"
	"tilelevel/internal/level"
)

// frameReport summarizes one recorded frame.
type frameReport struct {
	Cells  map[level.Cell]int
	Walls  int
	Calls  []graphics.OpCount
	Quads  int
	Enters int
	Exits  int
}

// dryRun draws a single frame at time t without a window and writes what the
// GPU would have been asked to do to w.
func dryRun(w io.Writer, grid *level.Grid, t float64) (frameReport, error) {
	rec := graphics.NewRecorder()
	gc := graphics.NewContext(rec)

	r, err := newRenderer(gc, grid, assets.Placeholder(), 900, 600)
	if err != nil {
		return frameReport{}, err
	}
	defer r.Dispose()

	r.Render(t, 0)

	rep := frameReport{
		Cells: grid.Count(),
		Calls: rec.Stats(),
		Quads: rec.Count(graphics.OpDrawQuad),
	}
	rep.Enters, rep.Exits = gc.Scopes()
	for c, n := range rep.Cells {
		if c.IsWall() {
			rep.Walls += n
		}
	}

	fmt.Fprintln(w, "cells:")
	for _, c := range slices.Sorted(maps.Keys(rep.Cells)) {
		fmt.Fprintf(w, "  %-14s %d\n", c, rep.Cells[c])
	}
	fmt.Fprintf(w, "  %-14s %d\n", "(walls)", rep.Walls)

	fmt.Fprintln(w, "calls:")
	for _, s := range rep.Calls {
		fmt.Fprintf(w, "  %-14s %d\n", s.Name, s.Count)
	}

	fmt.Fprintf(w, "indoor scopes: %d entered, %d exited\n", rep.Enters, rep.Exits)
	if rep.Enters != rep.Exits {
		return rep, fmt.Errorf("unbalanced indoor lighting")
	}
	return rep, nil
}
