package host

import "fmt"

// ActorRef is a weak reference to an actor by form ID.
//
// Example:
//
//	ref := host.RefOf(actor)
//	// ... frames later
//	if a := ref.Resolve(h); a != nil {
//	    // still loaded
//	}
type ActorRef struct {
	ID uint32 // 0 = none
}

// RefOf returns a reference to a, or the empty reference for nil.
func RefOf(a Actor) ActorRef {
	if a == nil {
		return ActorRef{}
	}
	return a.Ref()
}

// Resolve returns the referenced actor, or nil if the reference is empty or
// no longer resolves.
func (r ActorRef) Resolve(l ActorLookup) Actor {
	if r.ID == 0 || l == nil {
		return nil
	}
	return l.LookupActor(r)
}

// IsValid reports whether the reference points to something.
// It doesn't check that the actor still exists.
func (r ActorRef) IsValid() bool {
	return r.ID != 0
}

func (r ActorRef) String() string {
	return fmt.Sprintf("%08X", r.ID)
}
