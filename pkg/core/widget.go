package core

import (
	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

// DefaultFocusMode is the focus mode new widgets start with.
var DefaultFocusMode = focus.ModeZOrder

// WidgetBase provides the state and behavior shared by every widget. Embed it
// and call Init from the constructor.
type WidgetBase struct {
	id        ID
	name      string
	self      Widget
	transform layout.Transform

	// At most one of slot, canvas and host is set.
	slot            Slot
	canvas          Canvas
	host            Widget
	alignedToCanvas bool
	components      []Widget

	disabled   bool
	visibility Visibility
	focused    bool
	pressed    bool
	hovered    bool
	focusMode  focus.Mode
	zOrder     int
	rotation   float64
	refs       int
	destroyed  bool

	// OnFocusChange is called whenever the widget gains or loses focus.
	OnFocusChange func(focused bool)
}

// Init registers the outer widget so base methods can dispatch to it. It
// must be called before any other method.
func (w *WidgetBase) Init(self Widget, name string) {
	w.id = newID()
	w.name = name
	w.self = self
	w.focusMode = DefaultFocusMode
}

// BaseWidget returns w.
func (w *WidgetBase) BaseWidget() *WidgetBase {
	return w
}

// Self returns the outer widget registered with Init.
func (w *WidgetBase) Self() Widget {
	return w.self
}

// ID returns the process-unique widget id.
func (w *WidgetBase) ID() ID {
	return w.id
}

// Name returns the widget name.
func (w *WidgetBase) Name() string {
	return w.name
}

// SetName renames the widget.
func (w *WidgetBase) SetName(name string) {
	w.name = name
}

// Transform returns a copy of the widget's transform.
func (w *WidgetBase) Transform() layout.Transform {
	return w.transform
}

// Bounds returns the resolved rectangle.
func (w *WidgetBase) Bounds() graphics.Bounds {
	return w.transform.Bounds()
}

// Location returns the resolved top-left corner.
func (w *WidgetBase) Location() graphics.Vector {
	return w.transform.Location()
}

// Dimension returns the resolved size.
func (w *WidgetBase) Dimension() graphics.Dimension {
	return w.transform.Dimension()
}

// NonAlignedDimension returns the intrinsic size.
func (w *WidgetBase) NonAlignedDimension() graphics.Dimension {
	return w.transform.NonAlignedDimension()
}

// PaddedExtent returns the intrinsic extent on axis plus padding.
func (w *WidgetBase) PaddedExtent(axis layout.Axis) float64 {
	return w.transform.PaddedExtent(axis)
}

// Padding returns the outer padding.
func (w *WidgetBase) Padding() graphics.Margin {
	return w.transform.Padding()
}

// Offset returns the explicit position used by AlignNone.
func (w *WidgetBase) Offset() graphics.Vector {
	return w.transform.Offset()
}

// Alignment returns the configured alignment on axis.
func (w *WidgetBase) Alignment(axis layout.Axis) layout.Alignment {
	return w.transform.Alignment(axis)
}

// Owner returns the slot or host the widget is attached to, or nil.
func (w *WidgetBase) Owner() Object {
	switch {
	case w.slot != nil:
		return w.slot
	case w.host != nil:
		return w.host
	}
	return nil
}

// Slot returns the slot holding the widget, or nil.
func (w *WidgetBase) Slot() Slot {
	return w.slot
}

// Host returns the widget a component is attached to, or nil.
func (w *WidgetBase) Host() Widget {
	return w.host
}

// Parent returns the widget the state of w is inherited from: the container
// of its slot or its host.
func (w *WidgetBase) Parent() Widget {
	if w.slot != nil {
		if c := w.slot.Container(); c != nil {
			return c
		}
	}
	if w.host != nil {
		return w.host
	}
	return nil
}

// Components returns the attached components.
func (w *WidgetBase) Components() []Widget {
	return w.components
}

// HasComponents reports whether any component is attached.
func (w *WidgetBase) HasComponents() bool {
	return len(w.components) > 0
}

// HasChildren reports whether the widget owns slots. Leaves never do.
func (w *WidgetBase) HasChildren() bool {
	return false
}

// AttachState returns where the widget is attached.
func (w *WidgetBase) AttachState() AttachState {
	switch {
	case w.slot != nil:
		return AttachedToSlot
	case w.host != nil:
		return AttachedToHost
	case w.canvas != nil:
		return AttachedToCanvas
	}
	return Detached
}

// Canvas returns the canvas the widget is reachable from, or nil.
func (w *WidgetBase) Canvas() Canvas {
	switch {
	case w.slot != nil:
		return w.slot.Canvas()
	case w.host != nil:
		return w.host.Canvas()
	}
	return w.canvas
}

// IsEnabled reports whether the widget and all its ancestors are enabled.
func (w *WidgetBase) IsEnabled() bool {
	if w.disabled {
		return false
	}
	if p := w.Parent(); p != nil {
		return p.IsEnabled()
	}
	return true
}

// IsVisible reports whether the widget and all its ancestors are visible.
func (w *WidgetBase) IsVisible() bool {
	if w.visibility != Visible {
		return false
	}
	if p := w.Parent(); p != nil {
		return p.IsVisible()
	}
	return true
}

// Visibility returns the widget's own visibility, ignoring ancestors.
func (w *WidgetBase) Visibility() Visibility {
	return w.visibility
}

// IsFocused reports whether the widget has pointer focus.
func (w *WidgetBase) IsFocused() bool {
	return w.focused
}

// IsPressed reports whether a mouse button went down on the widget and has
// not been released.
func (w *WidgetBase) IsPressed() bool {
	return w.pressed
}

// IsHovered reports whether the pointer is over the widget.
func (w *WidgetBase) IsHovered() bool {
	return w.hovered
}

// FocusMode returns how the widget competes for focus with its siblings.
func (w *WidgetBase) FocusMode() focus.Mode {
	return w.focusMode
}

// SetFocusMode changes the focus mode.
func (w *WidgetBase) SetFocusMode(m focus.Mode) {
	w.focusMode = m
}

// CanReceiveFocus reports whether the widget is live, enabled and visible.
func (w *WidgetBase) CanReceiveFocus() bool {
	return !w.destroyed && w.IsEnabled() && w.IsVisible()
}

// IsInteractableWithMouse reports whether pointer events may reach the widget.
func (w *WidgetBase) IsInteractableWithMouse() bool {
	return w.CanReceiveFocus() && !w.self.IsCulled()
}

// IsInteractableWithKey reports whether key events may reach the widget.
func (w *WidgetBase) IsInteractableWithKey() bool {
	return w.focused && w.CanReceiveFocus()
}

// ZOrder returns the effective z-order: the local value plus the parent's.
func (w *WidgetBase) ZOrder() int {
	if p := w.Parent(); p != nil {
		return w.zOrder + p.ZOrder()
	}
	return w.zOrder
}

// LocalZOrder returns the z-order set on this widget alone.
func (w *WidgetBase) LocalZOrder() int {
	return w.zOrder
}

// IsCulled reports whether the widget lies entirely outside the region its
// ancestors leave visible. Detached widgets are never culled.
func (w *WidgetBase) IsCulled() bool {
	switch {
	case w.host != nil:
		return w.host.IsCulled()
	case w.slot != nil:
		return !w.Intersect(w.slot.CulledBounds())
	case w.canvas != nil:
		return !w.Intersect(w.canvas.ScreenBounds())
	}
	return false
}

// VisibleRegion returns the part of the widget's bounds not clipped by an
// ancestor.
func (w *WidgetBase) VisibleRegion() graphics.Bounds {
	b := w.Bounds()
	switch {
	case w.host != nil:
		return b.Intersection(w.host.VisibleRegion())
	case w.slot != nil:
		return b.Intersection(w.slot.CulledBounds())
	case w.canvas != nil:
		return b.Intersection(w.canvas.ScreenBounds())
	}
	return b
}

// Rotation returns the effective rotation in degrees, accumulated over the
// ancestors and the canvas.
func (w *WidgetBase) Rotation() float64 {
	return w.rotation
}

// LocalRotation returns the rotation set on this widget alone.
func (w *WidgetBase) LocalRotation() float64 {
	return w.transform.Rotation()
}

// RotationOrigin returns the point the effective rotation turns around.
func (w *WidgetBase) RotationOrigin() graphics.Vector {
	if p := w.Parent(); p != nil && p.Rotation() != 0 {
		return p.RotationOrigin()
	}
	if w.slot == nil && w.host == nil && w.canvas != nil && w.canvas.ScreenRotation() != 0 {
		return w.canvas.ScreenCenter()
	}
	return w.Bounds().Center()
}

// IsInside reports whether position lies inside the rotated bounds.
func (w *WidgetBase) IsInside(position graphics.Vector) bool {
	if r := w.Rotation(); r != 0 {
		position = position.Rotate(w.RotationOrigin(), -r)
	}
	return w.Bounds().Contains(position)
}

// Intersect reports whether the bounds overlap b.
func (w *WidgetBase) Intersect(b graphics.Bounds) bool {
	return w.Bounds().Intersects(b)
}

// HasGeometry reports whether the widget produces vertices. Leaves that draw
// override it together with VertexData, IndexData and GeometryDrawData.
func (w *WidgetBase) HasGeometry() bool {
	return false
}

// VertexData returns nil; see HasGeometry.
func (w *WidgetBase) VertexData(lineMode bool) []graphics.Vertex {
	return nil
}

// IndexData returns nil; see HasGeometry.
func (w *WidgetBase) IndexData(lineMode bool) []uint32 {
	return nil
}

// GeometryDrawData returns an empty descriptor; see HasGeometry.
func (w *WidgetBase) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawData{}
}

// IsDestroyed reports whether Destroy has run.
func (w *WidgetBase) IsDestroyed() bool {
	return w.destroyed
}

// MarkUpdated tells the canvas the widget needs a redraw.
func (w *WidgetBase) MarkUpdated() {
	notifyUpdated(w.self)
}

// MarkVerticesChanged tells the canvas the widget's vertex count changed.
func (w *WidgetBase) MarkVerticesChanged(count int) {
	notify(w.self, func(c Canvas) { c.VerticesSizeChanged(w.self, count) })
}

// SetDimension sets the explicit size and realigns. Owners are told about
// the change so wrapping containers can resize. Returns false if unchanged.
func (w *WidgetBase) SetDimension(d graphics.Dimension) bool {
	if !w.transform.SetDimension(d) {
		return false
	}
	w.self.Align()
	w.notifyDimensionUpdated()
	return true
}

// SetWidth sets the explicit width.
func (w *WidgetBase) SetWidth(width float64) bool {
	d := w.transform.NonAlignedDimension()
	d.Width = width
	return w.SetDimension(d)
}

// SetHeight sets the explicit height.
func (w *WidgetBase) SetHeight(height float64) bool {
	d := w.transform.NonAlignedDimension()
	d.Height = height
	return w.SetDimension(d)
}

// SetPadding sets the outer padding. Returns false if unchanged.
func (w *WidgetBase) SetPadding(m graphics.Margin) bool {
	if !w.transform.SetPadding(m) {
		return false
	}
	w.self.Align()
	w.notifyDimensionUpdated()
	return true
}

// SetOffset sets the explicit position used by AlignNone.
func (w *WidgetBase) SetOffset(offset graphics.Vector) bool {
	if !w.transform.SetOffset(offset) {
		return false
	}
	w.self.Align()
	return true
}

// SetAlignment sets the alignment on one axis.
func (w *WidgetBase) SetAlignment(axis layout.Axis, a layout.Alignment) bool {
	if !w.transform.SetAlignment(axis, a) {
		return false
	}
	w.self.Align()
	return true
}

// SetAlignments sets the horizontal and vertical alignment.
func (w *WidgetBase) SetAlignments(horizontal, vertical layout.Alignment) bool {
	h := w.transform.SetAlignment(layout.AxisHorizontal, horizontal)
	v := w.transform.SetAlignment(layout.AxisVertical, vertical)
	if !h && !v {
		return false
	}
	w.self.Align()
	return true
}

// SetRotation sets the local rotation in degrees.
func (w *WidgetBase) SetRotation(degrees float64) bool {
	if !w.transform.SetRotation(degrees) {
		return false
	}
	w.self.RefreshRotation()
	return true
}

// SetAlignedToCanvas makes a root align against the canvas screen bounds.
// It has no effect on widgets inside a slot.
func (w *WidgetBase) SetAlignedToCanvas(aligned bool) bool {
	if w.alignedToCanvas == aligned {
		return false
	}
	w.alignedToCanvas = aligned
	w.self.Align()
	return true
}

// IsAlignedToCanvas reports whether the widget aligns against the canvas.
func (w *WidgetBase) IsAlignedToCanvas() bool {
	return w.alignedToCanvas && w.canvas != nil && w.slot == nil
}

// SetVisibility shows or hides the widget. Hiding clears input state.
func (w *WidgetBase) SetVisibility(v Visibility) bool {
	if w.visibility == v {
		return false
	}
	w.visibility = v
	w.self.RefreshStatus()
	notify(w.self, func(c Canvas) { c.VisibilityChanged(w.self) })
	if s := w.slot; s != nil && s.Container() != nil {
		s.Container().OnSlotVisibilityChanged(s)
	}
	return true
}

// SetEnabled enables or disables the widget. Disabling clears input state.
func (w *WidgetBase) SetEnabled(enabled bool) bool {
	if w.disabled == !enabled {
		return false
	}
	w.disabled = !enabled
	w.self.RefreshStatus()
	w.MarkUpdated()
	return true
}

// SetZOrder sets the local z-order.
func (w *WidgetBase) SetZOrder(z int) bool {
	if w.zOrder == z {
		return false
	}
	w.zOrder = z
	notify(w.self, func(c Canvas) { c.ZOrderChanged(w.self) })
	return true
}

// Align resolves the transform against the slot, host or canvas the widget
// is attached to, and realigns its components on change.
func (w *WidgetBase) Align() bool {
	var changed bool
	switch {
	case w.slot != nil:
		changed = w.transform.AlignBoth(layout.ReferenceFrom(w.slot.Bounds()))
	case w.host != nil:
		changed = w.transform.AlignBoth(layout.ReferenceFrom(w.host.Bounds()))
	case w.canvas != nil && w.alignedToCanvas:
		screen := w.canvas.ScreenBounds()
		changed = w.transform.AlignBoth(layout.Reference{Bounds: screen, Origin: w.canvas.AnchorPoint(screen)})
	default:
		changed = w.transform.ResolveUnaligned()
	}
	if !changed {
		return false
	}
	w.MarkUpdated()
	for _, c := range w.components {
		c.Align()
	}
	if h, ok := w.self.(interface{ OnAligned() }); ok {
		h.OnAligned()
	}
	return true
}

// RefreshRotation recomputes the effective rotation from the parent chain.
func (w *WidgetBase) RefreshRotation() bool {
	r := w.transform.Rotation()
	switch p := w.Parent(); {
	case p != nil:
		r += p.Rotation()
	case w.canvas != nil:
		r += w.canvas.ScreenRotation()
	}
	if r == w.rotation {
		return false
	}
	w.rotation = r
	w.MarkUpdated()
	for _, c := range w.components {
		c.RefreshRotation()
	}
	return true
}

// RefreshStatus drops input state the widget may no longer hold after an
// enabled or visibility change on it or an ancestor.
func (w *WidgetBase) RefreshStatus() {
	if !w.CanReceiveFocus() {
		w.self.ResetInput()
	}
}

func (w *WidgetBase) notifyDimensionUpdated() {
	if s := w.slot; s != nil && s.Container() != nil {
		s.Container().OnSlotDimensionUpdated(s)
	}
}

// AttachToSlot moves the widget into slot. The slot must already hold the
// widget as content; containers call this from Insert and ReplaceContent.
func (w *WidgetBase) AttachToSlot(s Slot) {
	if s == nil || w.destroyed || w.host != nil || w.slot == s || s.Content() != w.self {
		return
	}
	w.detach()
	w.self.ResetInput()
	w.alignedToCanvas = false
	w.slot = s
	w.attached()
}

// AddToCanvas makes the widget a root of canvas, detaching it from any
// previous slot or canvas first.
func (w *WidgetBase) AddToCanvas(c Canvas) {
	if c == nil || w.destroyed || w.host != nil || (w.canvas == c && w.slot == nil) {
		return
	}
	w.detach()
	w.self.ResetInput()
	w.canvas = c
	c.AddToCanvas(w.self)
	w.attached()
}

// RemoveFromParent detaches the widget from its slot or canvas. A widget
// with outstanding references is re-added to the canvas when keepOnCanvas is
// set and otherwise left detached; an unreferenced widget is destroyed.
// Components cannot be removed this way.
func (w *WidgetBase) RemoveFromParent(keepOnCanvas bool) {
	if w.host != nil {
		return
	}
	canvas := w.Canvas()
	if !w.detach() {
		return
	}
	w.afterDetach()
	switch {
	case keepOnCanvas && w.refs > 0 && canvas != nil:
		w.self.AddToCanvas(canvas)
	case w.refs == 0:
		w.self.Destroy()
	}
}

// Retain adds an external reference that keeps the widget alive while it is
// detached.
func (w *WidgetBase) Retain() {
	w.refs++
}

// Release drops a reference added with Retain. Dropping the last reference of
// a detached widget destroys it.
func (w *WidgetBase) Release() {
	if w.refs == 0 {
		return
	}
	w.refs--
	if w.refs == 0 && w.AttachState() == Detached {
		w.self.Destroy()
	}
}

// References returns the number of outstanding Retain calls.
func (w *WidgetBase) References() int {
	return w.refs
}

func (w *WidgetBase) attached() {
	w.self.RefreshRotation()
	w.self.RefreshStatus()
	w.transform.DefaultAlignment(layout.AlignCenter)
	w.self.Align()
	if h, ok := w.self.(interface{ OnAttach() }); ok {
		h.OnAttach()
	}
}

// detach unlinks the widget from its slot or canvas and reports whether it
// was attached to either.
func (w *WidgetBase) detach() bool {
	switch {
	case w.slot != nil:
		s := w.slot
		w.slot = nil
		if c := s.Container(); c != nil {
			c.BaseContainer().eraseSlot(s)
		}
		return true
	case w.canvas != nil:
		c := w.canvas
		w.canvas = nil
		c.RemoveFromCanvas(w.self)
		return true
	}
	return false
}

func (w *WidgetBase) afterDetach() {
	w.self.ResetInput()
	w.self.Align()
	w.self.RefreshRotation()
	w.self.RefreshStatus()
	if h, ok := w.self.(interface{ OnRemoveFromParent() }); ok {
		h.OnRemoveFromParent()
	}
}

// Destroy detaches the widget, destroys its components and marks it dead.
// Destroyed widgets cannot be attached again.
func (w *WidgetBase) Destroy() {
	if w.destroyed {
		return
	}
	if w.host != nil {
		w.host.BaseWidget().dropComponent(w.self)
		w.host = nil
	} else {
		w.detach()
	}
	w.self.ResetInput()
	w.destroyed = true
	if h, ok := w.self.(interface{ OnDestroy() }); ok {
		h.OnDestroy()
	}
	components := w.components
	w.components = nil
	for _, c := range components {
		c.BaseWidget().host = nil
		c.Destroy()
	}
}

// AddComponent attaches c to the widget. The component aligns against the
// widget's bounds, centered unless it sets its own alignment, and inherits
// its enabled, visible, focus and culling state.
func (w *WidgetBase) AddComponent(c Widget) bool {
	if c == nil || c == w.self || c.IsDestroyed() || c.AttachState() != Detached {
		return false
	}
	cb := c.BaseWidget()
	cb.host = w.self
	w.components = append(w.components, c)
	cb.attached()
	notifyUpdated(c)
	return true
}

// RemoveComponent detaches and destroys c.
func (w *WidgetBase) RemoveComponent(c Widget) bool {
	if c == nil || c.Host() != w.self {
		return false
	}
	c.Destroy()
	w.MarkUpdated()
	return true
}

func (w *WidgetBase) dropComponent(c Widget) {
	for i, other := range w.components {
		if other == c {
			w.components = append(w.components[:i], w.components[i+1:]...)
			return
		}
	}
}

// CloneInto copies the widget's transform, flags, callbacks and components
// into dst, a freshly constructed detached widget of the same kind.
// Components dst already has are updated in place; extra components are
// cloned and attached.
func (w *WidgetBase) CloneInto(dst Widget) {
	d := dst.BaseWidget()
	d.name = w.name
	d.transform = w.transform
	d.disabled = w.disabled
	d.visibility = w.visibility
	d.focusMode = w.focusMode
	d.zOrder = w.zOrder
	d.OnFocusChange = w.OnFocusChange
	d.self.Align()
	d.self.RefreshRotation()
	for i, c := range w.components {
		if i < len(d.components) {
			c.BaseWidget().CloneInto(d.components[i])
			continue
		}
		d.AddComponent(c.Clone())
	}
}
