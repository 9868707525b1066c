package ui

import "github.com/go-ember/ember/pkg/input"

// Widget layers. Within one layer, call order breaks ties; a higher
// layer always wins the press regardless of call order.
const (
	// LayerBase is the default layer for ordinary page content.
	LayerBase = 0
	// LayerPopup is the layer popups and their children run at.
	LayerPopup = 100
)

// captureRequest is one widget's layer-aware claim on this frame's
// pointer press.
type captureRequest struct {
	id     ID
	layer  int
	order  int
	button input.PointerButton
	popup  ID // owning popup scope, or idNone
}

// pendingJump is a slider's deferred track-click value, applied on the
// next frame only if the press resolution confirms the slider.
type pendingJump struct {
	id    ID
	value float64
}

// captureState is the per-frame input-arbitration bookkeeping. The
// lifecycle is collect (widgets register intents in call order),
// resolve (once, at EndFrame), dispatch (deferred outcomes consumed by
// widgets on the following frame).
type captureState struct {
	// potentialTarget is the last hovered widget this frame; later
	// writers override earlier ones, so at any point it names the
	// visually topmost hovered widget issued so far.
	potentialTarget ID

	// active is the widget holding the current press. It persists
	// across frames while the button stays down.
	active       ID
	activeButton input.PointerButton

	// captor is the widget that accepted this press; it matches active
	// for the duration of the press.
	captor ID

	// pressWinner is last frame's resolved press winner, consumed by
	// press-mode widgets on the frame after the press.
	pressWinner ID

	// dragCarryOver is set at BeginFrame when the active button is
	// still down from a previous frame; it blocks new capture
	// attempts until the drag ends.
	dragCarryOver bool

	requests       []captureRequest
	order          int
	jump           *pendingJump
	jumpTaken      *pendingJump
	immediatePopup ID

	// press audit for popup dismissal: serial increments whenever a
	// frame's press resolves, pressPopup names the popup scope that
	// won it (idNone for presses outside every popup).
	pressSerial uint64
	pressPopup  ID
	pressed     bool
}

func (cs *captureState) beginFrame(snap *input.Snapshot) {
	cs.potentialTarget = idNone
	cs.requests = cs.requests[:0]
	cs.order = 0
	cs.jumpTaken = cs.jump
	cs.jump = nil
	cs.pressed = false

	if cs.active != idNone {
		idle := !snap.ButtonDown(cs.activeButton) && !snap.ButtonReleased(cs.activeButton)
		if idle || snap.ButtonPressed(cs.activeButton) {
			// The release never reached the captor (it may no longer
			// be issued); drop the stale hold. On the release frame
			// itself the hold survives so the captor can observe it,
			// but a fresh press never extends the previous hold.
			cs.active = idNone
			cs.captor = idNone
		}
	}
	cs.dragCarryOver = cs.active != idNone && snap.ButtonDown(cs.activeButton)
}

// setPotentialTarget records a hovered widget; last writer wins.
func (cs *captureState) setPotentialTarget(id ID) {
	cs.potentialTarget = id
}

// canAttemptCapture reports whether a hovered widget may claim the
// press this frame.
func (cs *captureState) canAttemptCapture(id ID) bool {
	return !cs.dragCarryOver && cs.potentialTarget == id
}

// request registers a layer-aware capture claim, resolved at EndFrame.
func (cs *captureState) request(id ID, layer int, button input.PointerButton, popup ID) {
	cs.requests = append(cs.requests, captureRequest{id: id, layer: layer, order: cs.order, button: button, popup: popup})
	cs.order++
	cs.pressed = true
}

// captureImmediately claims the press at once, for widgets that cannot
// legitimately be covered by a popup (slider grabbers, resize handles).
// A layered request in the same frame still overrides it at resolve.
func (cs *captureState) captureImmediately(id ID, button input.PointerButton, popup ID) {
	cs.active = id
	cs.captor = id
	cs.activeButton = button
	cs.immediatePopup = popup
	cs.pressed = true
}

// deferJump records a slider's candidate track-jump value.
func (cs *captureState) deferJump(id ID, value float64) {
	cs.jump = &pendingJump{id: id, value: value}
}

// takeJump hands a slider its confirmed jump from the previous frame.
func (cs *captureState) takeJump(id ID) (float64, bool) {
	if cs.jumpTaken == nil || cs.jumpTaken.id != id {
		return 0, false
	}
	v := cs.jumpTaken.value
	cs.jumpTaken = nil
	return v, true
}

// takePressWinner hands a press-mode widget its resolved click.
func (cs *captureState) takePressWinner(id ID) bool {
	if cs.pressWinner != id {
		return false
	}
	cs.pressWinner = idNone
	return true
}

// release clears the press ownership on button-up.
func (cs *captureState) release() {
	cs.active = idNone
	cs.captor = idNone
}

// resolve runs once per frame after all widgets have, picking the
// single winner of this frame's press among the layered requests and
// vetting any deferred slider jump.
func (cs *captureState) resolve(snap *input.Snapshot) {
	cs.pressWinner = idNone

	if len(cs.requests) > 0 {
		winner := cs.requests[0]
		for _, r := range cs.requests[1:] {
			if r.layer > winner.layer || (r.layer == winner.layer && r.order > winner.order) {
				winner = r
			}
		}
		cs.active = winner.id
		cs.captor = winner.id
		cs.activeButton = winner.button
		cs.pressWinner = winner.id
		cs.pressPopup = winner.popup

		// An ordinary widget claimed the press: any tentative slider
		// jump belonged to something drawn underneath it.
		if cs.jump != nil && cs.jump.id != winner.id {
			cs.jump = nil
		}
	} else if cs.pressed {
		cs.pressPopup = cs.immediatePopup
	}

	if cs.jump != nil && cs.jump.id != cs.captor {
		cs.jump = nil
	}

	if cs.pressed {
		cs.pressSerial++
	} else if snap != nil && (snap.ButtonPressed(input.ButtonPrimary) || snap.ButtonPressed(input.ButtonSecondary)) {
		// A press landed on empty space: nothing claims it, but popups
		// still observe it and dismiss.
		cs.pressPopup = idNone
		cs.pressSerial++
	}
}
