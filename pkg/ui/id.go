package ui

// ID is a stable widget identifier derived from a caller-chosen key.
// Reusing the same key across frames is what gives a widget state
// continuity; two different widget kinds must never share an ID.
type ID uint64

// idNone marks the absence of a widget.
const idNone ID = 0

// fnv-1a parameters.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func hashString(seed uint64, s string) uint64 {
	h := seed
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// WidgetID hashes a key into an ID scoped by the Context's id stack.
// Inside a PushID/PopID pair the same key yields a distinct ID, which
// lets loops reuse one key per iteration:
//
//	for i, row := range rows {
//	    ctx.PushID(strconv.Itoa(i))
//	    ctx.Button("delete", "Delete", ui.ButtonOptions{})
//	    ctx.PopID()
//	}
func (c *Context) WidgetID(key string) ID {
	seed := uint64(fnvOffset)
	if n := len(c.idStack); n > 0 {
		seed = c.idStack[n-1]
	}
	h := hashString(seed, key)
	if h == 0 {
		h = fnvPrime
	}
	return ID(h)
}

// PushID scopes subsequent WidgetID calls by the given segment.
func (c *Context) PushID(segment string) {
	c.idStack = append(c.idStack, uint64(c.WidgetID(segment)))
}

// PopID removes the most recent id scope. Popping an empty stack is a
// reported usage error.
func (c *Context) PopID() {
	if len(c.idStack) == 0 {
		c.reportf("ui.PopID", kindState, "PopID without matching PushID")
		return
	}
	c.idStack = c.idStack[:len(c.idStack)-1]
}
