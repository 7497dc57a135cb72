package canvas

import (
	"slices"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/errors"
)

// walk visits w, its components and, for containers, the content of every
// slot, depth first. Returning false from fn skips the subtree.
func walk(w core.Widget, fn func(core.Widget) bool) {
	if w == nil || !fn(w) {
		return
	}
	for _, comp := range w.Components() {
		walk(comp, fn)
	}
	if ct, ok := w.(core.Container); ok {
		for _, s := range ct.Slots() {
			walk(s.Content(), fn)
		}
	}
}

func (c *Canvas) markDirty(o core.Object) {
	if w, ok := o.(core.Widget); ok && w.HasGeometry() {
		c.dirty[w.ID()] = w
	}
}

func (c *Canvas) markTree(w core.Widget) {
	walk(w, func(w core.Widget) bool {
		c.markDirty(w)
		return true
	})
}

// Walk visits every widget reachable from the roots, hidden and culled ones
// included, in tree order.
func (c *Canvas) Walk(fn func(core.Widget) bool) {
	for _, r := range c.roots {
		walk(r, fn)
	}
}

// DrawOrder returns the widgets to draw, back to front. Hidden widgets and
// their subtrees are skipped, as are culled widgets. In custom z-order mode
// the list is stably sorted by effective z-order.
func (c *Canvas) DrawOrder() []core.Widget {
	var out []core.Widget
	c.Walk(func(w core.Widget) bool {
		if !w.IsVisible() {
			return false
		}
		if !w.IsCulled() {
			out = append(out, w)
		}
		return true
	})
	if c.mode == core.ZOrderCustom {
		slices.SortStableFunc(out, func(a, b core.Widget) int { return a.ZOrder() - b.ZOrder() })
	}
	return out
}

// IsDirty reports whether w has geometry changes not yet flushed.
func (c *Canvas) IsDirty(w core.Widget) bool {
	_, ok := c.dirty[w.ID()]
	return ok
}

// Flush uploads the geometry of every changed widget in draw order,
// discards the geometry of widgets that left the tree and presents the
// frame. Renderer failures are reported through package errors; the first
// one is also returned.
func (c *Canvas) Flush() (err error) {
	defer errors.Recover("canvas.Flush")
	if c.renderer == nil {
		clear(c.dirty)
		return nil
	}

	reachable := make(map[core.ID]bool)
	c.Walk(func(w core.Widget) bool {
		reachable[w.ID()] = true
		return true
	})
	for id := range c.uploaded {
		if !reachable[id] {
			c.renderer.Discard(id)
			delete(c.uploaded, id)
		}
	}
	for id := range c.dirty {
		if !reachable[id] {
			delete(c.dirty, id)
		}
	}

	var order []core.ID
	for _, w := range c.DrawOrder() {
		if !w.HasGeometry() {
			continue
		}
		id := w.ID()
		order = append(order, id)
		if _, dirty := c.dirty[id]; !dirty && c.uploaded[id] {
			continue
		}
		if uerr := c.renderer.Upload(id, geometryOf(w, c.lineMode)); uerr != nil {
			c.report("canvas.Upload", w.Name(), uerr)
			if err == nil {
				err = uerr
			}
			continue
		}
		c.uploaded[id] = true
		delete(c.dirty, id)
	}

	if perr := c.renderer.Present(c.ScreenDimension(), order); perr != nil {
		c.report("canvas.Present", "", perr)
		if err == nil {
			err = perr
		}
	}
	return err
}

func (c *Canvas) report(op, object string, err error) {
	errors.Report(&errors.SlateError{
		Op:     op,
		Kind:   errors.KindRender,
		Err:    err,
		Object: object,
	})
}
