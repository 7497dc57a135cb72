package core

import (
	"testing"

	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
)

func TestWidget_AttachToSlotDefaultsToCenter(t *testing.T) {
	canvas := newTestCanvas(300, 300)
	root := newOverlay("root", 100, 100)
	root.AddToCanvas(canvas)
	leaf := newLeaf("leaf", 20, 10)

	slot := root.Insert(leaf)
	if slot == nil {
		t.Fatal("insert returned nil")
	}
	if leaf.AttachState() != AttachedToSlot || leaf.Slot() != slot {
		t.Fatalf("attach state = %v", leaf.AttachState())
	}
	want := graphics.BoundsLTWH(40, 45, 20, 10)
	if leaf.Bounds() != want {
		t.Errorf("bounds = %+v, want %+v", leaf.Bounds(), want)
	}
	if leaf.attached != 1 {
		t.Errorf("OnAttach ran %d times, want 1", leaf.attached)
	}
	if leaf.Canvas() != canvas {
		t.Error("content should reach the canvas through its slot")
	}
}

func TestWidget_SetDimensionReportsChange(t *testing.T) {
	leaf := newLeaf("leaf", 10, 10)
	if leaf.SetDimension(graphics.Dimension{Width: 10, Height: 10}) {
		t.Error("unchanged dimension should report false")
	}
	if !leaf.SetWidth(12) {
		t.Error("changed width should report true")
	}
	if leaf.Dimension().Width != 12 {
		t.Errorf("width = %v, want 12", leaf.Dimension().Width)
	}
}

func TestWidget_HidingResetsInput(t *testing.T) {
	canvas := newTestCanvas(300, 300)
	root := newOverlay("root", 100, 100)
	root.AddToCanvas(canvas)
	leaf := newLeaf("leaf", 50, 50)
	root.Insert(leaf)

	at := input.At(50, 50)
	root.OnMouseEnter(at)
	if !leaf.IsFocused() {
		t.Fatal("leaf should be focused after the pointer entered")
	}
	root.OnMouseButtonDown(at)
	if !leaf.IsPressed() {
		t.Fatal("leaf should be pressed")
	}

	leaf.SetVisibility(Hidden)
	if leaf.IsFocused() || leaf.IsPressed() {
		t.Error("hiding must clear focus and pressed state")
	}
	if leaf.IsInteractableWithKey() || leaf.IsInteractableWithMouse() {
		t.Error("hidden widget must not be interactable")
	}
	if got := leaf.focusLog; len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("focus callbacks = %v, want [true false]", got)
	}
	if canvas.count("visibility") != 1 {
		t.Errorf("visibility notifications = %d, want 1", canvas.count("visibility"))
	}
}

func TestWidget_StateInheritsFromAncestors(t *testing.T) {
	root := newOverlay("root", 100, 100)
	leaf := newLeaf("leaf", 10, 10)
	root.Insert(leaf)

	root.SetEnabled(false)
	if leaf.IsEnabled() {
		t.Error("content of a disabled container is disabled")
	}
	root.SetEnabled(true)
	root.SetVisibility(Hidden)
	if leaf.IsVisible() {
		t.Error("content of a hidden container is hidden")
	}

	root.SetZOrder(3)
	leaf.SetZOrder(2)
	if leaf.ZOrder() != 5 {
		t.Errorf("z-order = %d, want 5", leaf.ZOrder())
	}
}

func TestWidget_RotationAwareHitTest(t *testing.T) {
	leaf := newLeaf("bar", 100, 20)
	if !leaf.IsInside(graphics.Vector{X: 90, Y: 10}) {
		t.Fatal("unrotated point should be inside")
	}
	leaf.SetRotation(90)
	if leaf.Rotation() != 90 {
		t.Fatalf("rotation = %v, want 90", leaf.Rotation())
	}
	if leaf.IsInside(graphics.Vector{X: 90, Y: 10}) {
		t.Error("point outside the rotated rectangle reported inside")
	}
	if !leaf.IsInside(graphics.Vector{X: 50, Y: 50}) {
		t.Error("point inside the rotated rectangle reported outside")
	}
}

func TestWidget_RotationPropagatesToContent(t *testing.T) {
	canvas := newTestCanvas(200, 200)
	canvas.rotation = 10
	root := newOverlay("root", 100, 100)
	root.AddToCanvas(canvas)
	leaf := newLeaf("leaf", 10, 10)
	root.Insert(leaf)
	root.SetRotation(5)
	if leaf.Rotation() != 15 {
		t.Errorf("content rotation = %v, want 15", leaf.Rotation())
	}
}

func TestWidget_RemoveFromParentDestroysUnreferenced(t *testing.T) {
	root := newOverlay("root", 100, 100)
	leaf := newLeaf("leaf", 10, 10)
	root.Insert(leaf)

	leaf.RemoveFromParent(false)
	if root.SlotCount() != 0 {
		t.Errorf("slot count = %d, want 0", root.SlotCount())
	}
	if !leaf.IsDestroyed() {
		t.Error("unreferenced widget should be destroyed")
	}
	if leaf.removed != 1 {
		t.Errorf("OnRemoveFromParent ran %d times, want 1", leaf.removed)
	}
	if root.Insert(leaf) != nil {
		t.Error("destroyed widget must not be inserted")
	}
}

func TestWidget_RemoveFromParentKeepsReferencedOnCanvas(t *testing.T) {
	canvas := newTestCanvas(300, 300)
	root := newOverlay("root", 100, 100)
	root.AddToCanvas(canvas)
	leaf := newLeaf("leaf", 10, 10)
	leaf.Retain()
	root.Insert(leaf)

	leaf.RemoveFromParent(true)
	if leaf.IsDestroyed() {
		t.Fatal("referenced widget must survive")
	}
	if leaf.AttachState() != AttachedToCanvas {
		t.Fatalf("attach state = %v, want canvas", leaf.AttachState())
	}
	if len(canvas.roots) != 2 {
		t.Errorf("roots = %d, want 2", len(canvas.roots))
	}

	leaf.RemoveFromParent(false)
	if leaf.AttachState() != Detached || leaf.IsDestroyed() {
		t.Fatal("referenced widget should be left detached")
	}
	leaf.Release()
	if !leaf.IsDestroyed() {
		t.Error("releasing the last reference of a detached widget destroys it")
	}
}

func TestWidget_AddToCanvasAlignsWhenRequested(t *testing.T) {
	canvas := newTestCanvas(200, 100)
	leaf := newLeaf("leaf", 20, 20)
	leaf.SetOffset(graphics.Vector{X: 5, Y: 5})
	leaf.AddToCanvas(canvas)
	if leaf.Bounds() != graphics.BoundsLTWH(5, 5, 20, 20) {
		t.Fatalf("unaligned root bounds = %+v", leaf.Bounds())
	}
	leaf.SetAlignments(layout.AlignEnd, layout.AlignCenter)
	leaf.SetAlignedToCanvas(true)
	if leaf.Bounds() != graphics.BoundsLTWH(180, 40, 20, 20) {
		t.Errorf("canvas aligned bounds = %+v", leaf.Bounds())
	}
}

func TestWidget_ComponentsFollowHost(t *testing.T) {
	canvas := newTestCanvas(300, 300)
	host := newLeaf("host", 100, 40)
	host.AddToCanvas(canvas)
	comp := newLeaf("comp", 10, 10)
	comp.SetAlignments(layout.AlignEnd, layout.AlignFill)

	if !host.AddComponent(comp) {
		t.Fatal("AddComponent failed")
	}
	if host.AddComponent(comp) {
		t.Error("a component cannot be added twice")
	}
	if comp.Bounds() != graphics.BoundsLTWH(90, 0, 10, 40) {
		t.Errorf("component bounds = %+v", comp.Bounds())
	}
	host.SetOffset(graphics.Vector{X: 50})
	if comp.Location().X != 140 {
		t.Errorf("component should follow the host, x = %v", comp.Location().X)
	}
	host.SetVisibility(Hidden)
	if comp.IsVisible() {
		t.Error("component of a hidden host is hidden")
	}
	host.SetOffset(graphics.Vector{X: 1000})
	if !comp.IsCulled() {
		t.Error("component of a culled host is culled")
	}
	comp.RemoveFromParent(false)
	if comp.Host() != host {
		t.Error("components are never detached through RemoveFromParent")
	}
	host.Destroy()
	if !comp.IsDestroyed() {
		t.Error("destroying the host destroys its components")
	}
}

func TestWidget_SuppressedNotifications(t *testing.T) {
	canvas := newTestCanvas(300, 300)
	leaf := newLeaf("leaf", 10, 10)
	leaf.AddToCanvas(canvas)
	before := canvas.count("updated")

	restore := SuppressCanvasNotifications()
	leaf.SetDimension(graphics.Dimension{Width: 20, Height: 20})
	leaf.SetZOrder(4)
	if !CanvasNotificationsSuppressed() {
		t.Fatal("notifications should be suppressed")
	}
	restore()
	restore()
	if CanvasNotificationsSuppressed() {
		t.Fatal("restore must be idempotent")
	}
	if canvas.count("updated") != before || canvas.count("zorder") != 0 {
		t.Error("no notification may reach the canvas while suppressed")
	}
	leaf.SetDimension(graphics.Dimension{Width: 30, Height: 30})
	if canvas.count("updated") == before {
		t.Error("notifications should resume after restore")
	}
}

func TestWidget_CloneIsDetachedCopy(t *testing.T) {
	root := newOverlay("root", 100, 100)
	leaf := newLeaf("leaf", 30, 10)
	leaf.SetPadding(graphics.MarginAll(2))
	leaf.SetFocusMode(1)
	root.Insert(leaf)

	clone := leaf.Clone()
	if clone.AttachState() != Detached {
		t.Fatal("clone must not be attached")
	}
	if clone.ID() == leaf.ID() {
		t.Error("clone needs its own id")
	}
	cb := clone.BaseWidget()
	if cb.NonAlignedDimension() != leaf.NonAlignedDimension() || cb.Padding() != leaf.Padding() {
		t.Error("clone should copy the transform")
	}
	if clone.FocusMode() != leaf.FocusMode() {
		t.Error("clone should copy the focus mode")
	}
	if root.SlotCount() != 1 {
		t.Error("cloning must not insert into the source's container")
	}
}
