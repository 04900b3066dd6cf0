package compute

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daviszhen/colsort/pkg/chunk"
	"github.com/daviszhen/colsort/pkg/util"
)

// Sorter sorts a ColumnSet: one selection is computed from the
// comparator, then applied to every column. All columns always move
// together under the same selection.
type Sorter struct {
	cmp  Comparator
	opts util.SortOptions
}

func NewSorter(cmp Comparator, opts util.SortOptions) *Sorter {
	if cmp == nil {
		cmp = LexicographicLess
	}
	return &Sorter{
		cmp:  cmp,
		opts: opts,
	}
}

func (sorter *Sorter) Sort(cs *chunk.ColumnSet) error {
	cs.CheckAligned()
	count := cs.Card()
	start := time.Now()
	sel := SortedSelection(count, func(i, j int) bool {
		return sorter.cmp(cs, i, j)
	})

	var err error
	if sorter.opts.Parallel {
		err = sorter.applyParallel(cs, sel)
	} else {
		sorter.apply(cs, sel)
	}
	if err != nil {
		return err
	}

	util.Debug("columnar sort done",
		zap.Int("rows", count),
		zap.Bool("parallel", sorter.opts.Parallel),
		zap.Bool("inPlace", sorter.opts.InPlace),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (sorter *Sorter) apply(cs *chunk.ColumnSet, sel *chunk.SelectVector) {
	if sorter.opts.InPlace {
		ApplySelectionInPlace(sel, cs.QueryIndex)
		ApplySelectionInPlace(sel, cs.Distance)
		ApplySelectionInPlace(sel, cs.Attribute)
		ApplySelectionInPlace(sel, cs.WordIndex)
		ApplySelectionInPlace(sel, cs.IsExact)
	} else {
		cs.QueryIndex = ApplySelection(sel, cs.QueryIndex)
		cs.Distance = ApplySelection(sel, cs.Distance)
		cs.Attribute = ApplySelection(sel, cs.Attribute)
		cs.WordIndex = ApplySelection(sel, cs.WordIndex)
		cs.IsExact = ApplySelection(sel, cs.IsExact)
	}
}

// applyParallel runs one worker per column. The workers share only
// the immutable selection. Each one reads and writes a single
// column, so the join is the only synchronization needed.
func (sorter *Sorter) applyParallel(cs *chunk.ColumnSet, sel *chunk.SelectVector) error {
	g := new(errgroup.Group)
	if sorter.opts.InPlace {
		g.Go(func() error {
			ApplySelectionInPlace(sel, cs.QueryIndex)
			return nil
		})
		g.Go(func() error {
			ApplySelectionInPlace(sel, cs.Distance)
			return nil
		})
		g.Go(func() error {
			ApplySelectionInPlace(sel, cs.Attribute)
			return nil
		})
		g.Go(func() error {
			ApplySelectionInPlace(sel, cs.WordIndex)
			return nil
		})
		g.Go(func() error {
			ApplySelectionInPlace(sel, cs.IsExact)
			return nil
		})
	} else {
		g.Go(func() error {
			cs.QueryIndex = ApplySelection(sel, cs.QueryIndex)
			return nil
		})
		g.Go(func() error {
			cs.Distance = ApplySelection(sel, cs.Distance)
			return nil
		})
		g.Go(func() error {
			cs.Attribute = ApplySelection(sel, cs.Attribute)
			return nil
		})
		g.Go(func() error {
			cs.WordIndex = ApplySelection(sel, cs.WordIndex)
			return nil
		})
		g.Go(func() error {
			cs.IsExact = ApplySelection(sel, cs.IsExact)
			return nil
		})
	}
	return g.Wait()
}
