// Package user implements hub users, the observers of the command catalog.
//
// A User attaches to its subject as soon as it is created and keeps a
// private copy of the last catalog it was sent. Commands are addressed by
// their 0-based position in that copy:
//
//	u := user.New(h, user.WithIDs(ident.NewCounter("user-")))
//	defer u.Close()
//
//	h.Notify()
//	for _, e := range u.List() {
//	    fmt.Println(e) // "0: Turn Smart Socket on"
//	}
//	res, err := u.Run(ctx, 0)
//
// Run rejects any index outside [0, Len()) with ErrNoSuchCommand, including
// Len() itself. A user only sees commands added to the hub after the next
// Notify.
package user
