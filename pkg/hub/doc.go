// Package hub implements the YandexPlus hub, the subject of the command
// catalog distribution.
//
// # Catalog
//
// A Hub owns one device of each kind (see package device) and an ordered,
// append-only catalog of commands. AddCommand binds a command to the hub's
// device of the matching kind and appends it; commands are never removed or
// reordered, so a catalog index identifies a command for the hub's lifetime.
//
// # Observers
//
// Observers attach to a hub and receive the whole catalog on every Notify:
//
//	h := hub.New(hub.WithLogger(logger))
//	h.AddCommands(command.NewSocketOn(), command.NewLightIncrease(50))
//
//	u := user.New(h)  // attaches
//	h.Notify()        // u now sees both commands
//
// Notify is explicit. Commands added after a Notify are invisible to
// observers until the next one, and observers that attach late see nothing
// until then.
//
// The hub does not own its observers. Detach removes an observer by identity
// and leaves the order of the remaining observers unchanged; detaching a
// non-member does nothing. Observers are called outside the hub's lock, in
// attachment order, so an observer may call back into the hub.
package hub
