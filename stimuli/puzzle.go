// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"fmt"
	"math/rand/v2"

	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// Puzzle is a board of colored tiles shuffled over a grid of cells,
// which the subject puts in order by dragging them with the [DragMove]
// mixin. A dropped tile swaps places with the tile of the nearest
// cell. The group ends with the return key, and NumberCorrect then
// holds the number of tiles in their home cell.
type Puzzle struct {
	BackgroundColor *expar.Par
	Rows            *expar.Par
	Columns         *expar.Par
	TileSize        *expar.Par
	Gap             *expar.Par

	// Seed seeds the shuffle; with 0 the tiles start in order.
	Seed          *expar.Par
	NumberCorrect *expar.Par

	// cells maps each tile to the cell it is in.
	cells  []int
	colors []*expar.Par
}

// firstTile is the list index of the first tile.
const firstTile = 1

func (pz *Puzzle) Create(d *display.Display) int {
	pz.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	pz.Rows = d.NewPar("Rows", expar.Int, expar.IntValue(3))
	pz.Columns = d.NewPar("Columns", expar.Int, expar.IntValue(3))
	pz.TileSize = d.NewPar("TileSize", expar.Double, expar.DoubleValue(60))
	pz.Gap = d.NewPar("Gap", expar.Double, expar.DoubleValue(4))
	pz.Seed = d.NewPar("Seed", expar.Int, expar.IntValue(1))
	pz.NumberCorrect = d.NewDerived("NumberCorrect", expar.Int, expar.IntValue(0))

	bg := d.Enter(display.NewBackground(pz.BackgroundColor), 0)
	d.EnterTiming(0, timing.Response{Keys: []key.Codes{key.CodeReturnEnter}})
	return bg
}

func (pz *Puzzle) tiles() int {
	return max(pz.Rows.Int(), 0) * max(pz.Columns.Int(), 0)
}

// ComputeColors gives the tiles hues evenly spaced around the circle.
func (pz *Puzzle) ComputeColors(d *display.Display) {
	n := pz.tiles()
	pz.ensureColors(d, n)
	for i := range n {
		d.Set(pz.colors[i], expar.ColorValue(colors.FromHSV(360*float64(i)/float64(n), 0.6, 0.8)))
	}
}

func (pz *Puzzle) ensureColors(d *display.Display, n int) {
	for i := len(pz.colors); i < n; i++ {
		pz.colors = append(pz.colors, d.NewDerived(fmt.Sprintf("Tile%d.Color", i), expar.Color, expar.Value{}))
	}
}

// ComputeGeometry deals the tiles to their shuffled starting cells.
func (pz *Puzzle) ComputeGeometry(d *display.Display) {
	n := pz.tiles()
	pz.ensureColors(d, n)
	d.List.Ensure(firstTile, n, func(i int) (display.Element, display.Mask) {
		r := display.NewRect(pz.colors[i], math32.Vector2{}, math32.Vector2{})
		r.Selectable = true
		return r, display.Groups(0)
	})
	pz.cells = make([]int, n)
	for i := range pz.cells {
		pz.cells[i] = i
	}
	if seed := uint64(pz.Seed.Int()); seed != 0 {
		rnd := rand.New(rand.NewPCG(seed, seed))
		rnd.Shuffle(n, func(i, j int) { pz.cells[i], pz.cells[j] = pz.cells[j], pz.cells[i] })
	}
	s := pz.TileSize.Float32()
	for i, c := range pz.cells {
		d.List.At(firstTile+i).(*display.Rect).SetRect(pz.cellCenter(c), math32.Vec2(s, s))
	}
}

// cellCenter returns the center of a grid cell.
func (pz *Puzzle) cellCenter(c int) math32.Vector2 {
	rows, cols := max(pz.Rows.Int(), 1), max(pz.Columns.Int(), 1)
	step := pz.TileSize.Float32() + pz.Gap.Float32()
	x0 := -step * float32(cols-1) / 2
	y0 := -step * float32(rows-1) / 2
	return math32.Vec2(x0+step*float32(c%cols), y0+step*float32(c/cols))
}

// nearestCell returns the cell whose center is closest to pt.
func (pz *Puzzle) nearestCell(pt math32.Vector2) int {
	best, bestDist := 0, math32.Infinity
	for c := range pz.cells {
		if dist := pz.cellCenter(c).Sub(pt).LengthSquared(); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

// Drop swaps the dropped tile with the tile of the nearest cell.
func (pz *Puzzle) Drop(d *display.Display, i int, start, drop math32.Vector2) math32.Vector2 {
	tile := i - firstTile
	if tile < 0 || tile >= len(pz.cells) {
		return start
	}
	to := pz.nearestCell(drop)
	from := pz.cells[tile]
	for other, c := range pz.cells {
		if c == to && other != tile {
			pz.cells[other] = from
			setCenter(d.List.At(firstTile+other), pz.cellCenter(from))
			break
		}
	}
	pz.cells[tile] = to
	return pz.cellCenter(to)
}

// Correct returns the number of tiles in their home cell.
func (pz *Puzzle) Correct() int {
	n := 0
	for tile, c := range pz.cells {
		if tile == c {
			n++
		}
	}
	return n
}

func (pz *Puzzle) TimingGroupFinished(d *display.Display, group int) {
	d.Set(pz.NumberCorrect, expar.IntValue(pz.Correct()))
}
