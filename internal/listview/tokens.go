package listview

// ActionKind labels which mutation a busy state belongs to.
type ActionKind string

const (
	ActionApprove ActionKind = "approve"
	ActionReject  ActionKind = "reject"
	ActionVerify  ActionKind = "verify"
	ActionToggle  ActionKind = "toggle"
	ActionDelete  ActionKind = "delete"
)

// Token identifies one in-flight (item, action) pair.
type Token struct {
	ItemID string
	Kind   ActionKind
}

// InFlight tracks the set of in-flight mutations. Unlike a single busy
// slot, independent rows can mutate concurrently without their busy
// indicators cross-talking.
type InFlight struct {
	tokens map[Token]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{tokens: make(map[Token]struct{})}
}

// Start records the token. Returns false if the same (item, action) is
// already in flight, in which case the caller must not start another.
func (f *InFlight) Start(itemID string, kind ActionKind) bool {
	t := Token{ItemID: itemID, Kind: kind}
	if _, exists := f.tokens[t]; exists {
		return false
	}
	f.tokens[t] = struct{}{}
	return true
}

// Finish removes the token. Finishing an unknown token is a no-op, so
// result handlers can call it unconditionally.
func (f *InFlight) Finish(itemID string, kind ActionKind) {
	delete(f.tokens, Token{ItemID: itemID, Kind: kind})
}

// Active reports whether the exact (item, action) pair is in flight.
func (f *InFlight) Active(itemID string, kind ActionKind) bool {
	_, ok := f.tokens[Token{ItemID: itemID, Kind: kind}]
	return ok
}

// Busy reports whether any action is in flight for the item.
func (f *InFlight) Busy(itemID string) bool {
	for t := range f.tokens {
		if t.ItemID == itemID {
			return true
		}
	}
	return false
}

// Any reports whether any mutation is in flight at all.
func (f *InFlight) Any() bool { return len(f.tokens) > 0 }

// Count returns the number of in-flight mutations.
func (f *InFlight) Count() int { return len(f.tokens) }
