package ui

import (
	"testing"

	"github.com/go-ember/ember/pkg/geometry"
)

// popupUI is the canonical open/dismiss scenario: a trigger button, a
// popup with an item, and an unrelated base-layer button under the
// popup's bounds.
type popupUI struct {
	f          *fixture
	open       bool
	itemClicks int
	underneath int
}

func (p *popupUI) body() {
	if p.f.ctx.Button("open", "Open", ButtonOptions{
		At:   geometry.Offset{X: 0, Y: 0},
		Size: geometry.Size{Width: 60, Height: 20},
	}) {
		p.f.ctx.OpenPopup("menu")
	}
	// Drawn before the popup, overlapped by it.
	if p.f.ctx.Button("under", "Under", ButtonOptions{
		At:   geometry.Offset{X: 10, Y: 40},
		Size: geometry.Size{Width: 100, Height: 30},
	}) {
		p.underneath++
	}
	p.open = p.f.ctx.BeginPopup("menu", PopupOptions{
		At:   geometry.Offset{X: 0, Y: 30},
		Size: geometry.Size{Width: 120, Height: 80},
	})
	if p.open {
		if p.f.ctx.Button("item", "Item", ButtonOptions{Size: geometry.Size{Width: 100, Height: 20}}) {
			p.itemClicks++
			p.f.ctx.ClosePopup("menu")
		}
		p.f.ctx.EndPopup()
	}
}

func TestPopupOpensAndClaimsPressesOverBase(t *testing.T) {
	p := &popupUI{f: newFixture(t)}
	p.f.click(30, 10, p.body) // open the menu
	if !p.open {
		t.Fatal("popup did not open")
	}

	// Click the popup item. It overlaps the base button, which is
	// issued later in z-order terms but sits on the base layer.
	p.f.click(50, 45, p.body)
	if p.itemClicks != 1 {
		t.Fatalf("item clicks = %d, want 1", p.itemClicks)
	}
	if p.underneath != 0 {
		t.Fatalf("base button under the popup clicked %d times", p.underneath)
	}
	p.f.frame(p.body)
	if p.open {
		t.Fatal("item click did not close the popup")
	}
}

func TestPopupDismissesOnOutsidePress(t *testing.T) {
	p := &popupUI{f: newFixture(t)}
	p.f.click(30, 10, p.body)
	if !p.open {
		t.Fatal("popup did not open")
	}

	// Press far away, on empty space.
	p.f.click(400, 400, p.body)
	p.f.frame(p.body)
	if p.open {
		t.Fatal("outside press did not dismiss the popup")
	}
	if p.itemClicks != 0 {
		t.Fatalf("dismissal clicked the item %d times", p.itemClicks)
	}
}

func TestPopupSurvivesClickOnOwnPadding(t *testing.T) {
	p := &popupUI{f: newFixture(t)}
	p.f.click(30, 10, p.body)
	if !p.open {
		t.Fatal("popup did not open")
	}

	// Click popup background below the item: claimed by the body at
	// the popup layer, so it neither dismisses nor falls through.
	p.f.click(60, 100, p.body)
	p.f.frame(p.body)
	if !p.open {
		t.Fatal("padding click dismissed the popup")
	}
	if p.underneath != 0 {
		t.Fatalf("padding click fell through to the base button %d times", p.underneath)
	}
}

func TestPopupStaysOpenWithoutPresses(t *testing.T) {
	p := &popupUI{f: newFixture(t)}
	p.f.click(30, 10, p.body)
	for i := 0; i < 5; i++ {
		p.f.frame(p.body)
	}
	if !p.open {
		t.Fatal("popup closed without any press")
	}
}

func TestPopupKeysResolveAcrossIDScopes(t *testing.T) {
	// OpenPopup and ClosePopup are called from other id scopes as a
	// matter of course (a toolbar button opening the menu, an item
	// inside the menu closing it); both must address the popup that
	// BeginPopup named at the root.
	f := newFixture(t)
	openNow, closeNow := false, false
	var open bool
	body := func() {
		if openNow {
			f.ctx.PushID("toolbar")
			f.ctx.OpenPopup("menu")
			f.ctx.PopID()
		}
		open = f.ctx.BeginPopup("menu", PopupOptions{
			At:   geometry.Offset{X: 0, Y: 30},
			Size: geometry.Size{Width: 120, Height: 80},
		})
		if open {
			f.ctx.PushID("item")
			if closeNow {
				f.ctx.ClosePopup("menu")
			}
			f.ctx.PopID()
			f.ctx.EndPopup()
		}
	}

	openNow = true
	f.frame(body)
	openNow = false
	f.frame(body)
	if !open {
		t.Fatal("scoped OpenPopup did not open the root popup")
	}

	closeNow = true
	f.frame(body)
	closeNow = false
	f.frame(body)
	if open {
		t.Fatal("scoped ClosePopup did not close the root popup")
	}
	f.noErrors()
}

func TestPopupChildrenInheritPopupLayer(t *testing.T) {
	f := newFixture(t)
	var layer int
	f.frame(func() {
		f.ctx.OpenPopup("m")
		if f.ctx.BeginPopup("m", PopupOptions{At: geometry.Offset{X: 0, Y: 0}, Size: geometry.Size{Width: 50, Height: 50}}) {
			layer = f.ctx.effectiveLayer(0)
			f.ctx.EndPopup()
		}
	})
	if layer != LayerPopup {
		t.Fatalf("child layer %d inside a popup, want %d", layer, LayerPopup)
	}
	// Outside the popup the ambient layer is back.
	f.frame(func() {
		if got := f.ctx.effectiveLayer(0); got != LayerBase {
			t.Fatalf("ambient layer %d outside popups, want %d", got, LayerBase)
		}
	})
}
