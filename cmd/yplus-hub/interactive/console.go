// Package interactive provides the interactive console for yplus-hub.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/yandexplus/yplus-go/pkg/catalog"
	"github.com/yandexplus/yplus-go/pkg/hub"
	"github.com/yandexplus/yplus-go/pkg/ident"
	"github.com/yandexplus/yplus-go/pkg/user"
)

// Console drives a hub and its users from the command line.
type Console struct {
	rl  *readline.Instance
	out io.Writer
	err io.Writer

	hub *hub.Hub
	ids ident.Allocator

	// Join order.
	users []*user.User
}

// New creates a console reading from the terminal.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "yplus> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl, out: rl.Stdout(), err: rl.Stderr()}, nil
}

func newConsole(out io.Writer) *Console {
	return &Console{out: out, err: out}
}

// Stdout returns a writer that coordinates with the prompt.
func (c *Console) Stdout() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// Stderr returns a writer that coordinates with the prompt.
func (c *Console) Stderr() io.Writer {
	if c.err == nil {
		return os.Stderr
	}
	return c.err
}

// Attach sets the hub the console operates on and the allocator for users
// it creates.
func (c *Console) Attach(h *hub.Hub, ids ident.Allocator) {
	c.hub = h
	c.ids = ids
}

// Run reads and executes commands until quit, EOF, or ctx is done.
// Remaining users leave when Run returns.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()
	defer c.closeUsers()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if quit := c.Handle(ctx, line); quit {
			cancel()
			return
		}
	}
}

// Handle executes one console line and reports whether the console should
// exit.
func (c *Console) Handle(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "join", "j":
		c.cmdJoin(args)

	case "leave":
		c.cmdLeave(args)

	case "users", "u":
		c.cmdUsers()

	case "notify", "n":
		c.hub.Notify()
		fmt.Fprintf(c.out, "Catalog of %d commands sent to %d users\n", c.hub.Len(), len(c.hub.Observers()))

	case "list", "ls":
		c.cmdList(args)

	case "run", "r":
		c.cmdRun(ctx, args)

	case "add", "a":
		c.cmdAdd(args)

	case "load":
		c.cmdLoad(args)

	case "catalog", "c":
		c.cmdCatalog()

	case "kinds":
		fmt.Fprintln(c.out, strings.Join(catalog.Kinds(), "\n"))

	case "devices", "d":
		c.cmdDevices()

	case "toggle":
		c.hub.Devices().Socket().Toggle()
		fmt.Fprintf(c.out, "Socket is now %s\n", c.hub.Devices().Socket().State())

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
YandexPlus Hub Commands:
  Users:
    join [n]              - Create n users (default 1); they subscribe at once
    leave <user>          - Unsubscribe a user
    users                 - List users and their snapshot sizes
    list [user]           - Show the commands a user has received
    run [user] <index>    - Run a command from a user's snapshot

  Catalog:
    add <kind> [param]    - Add a command, e.g. add light_increase 30
    load <preset>         - Add every command of an embedded preset (no name lists them)
    catalog               - Show the hub catalog
    kinds                 - List command kinds
    notify                - Send the catalog to all users

  Devices:
    devices               - Show device states
    toggle                - Flip the socket on or off

  General:
    help                  - Show this help
    quit                  - Exit

  Users are named by ID or by their number in 'users'. With a single user
  the name may be left out.`)
}

func (c *Console) cmdJoin(args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(c.out, "Invalid count: %s\n", args[0])
			return
		}
		n = v
	}

	for i := 0; i < n; i++ {
		u := user.New(c.hub, user.WithIDs(c.ids))
		c.users = append(c.users, u)
		fmt.Fprintf(c.out, "User %s joins %s\n", u.ID(), c.hub.Name())
	}
}

func (c *Console) cmdLeave(args []string) {
	u, i, ok := c.lookup(args)
	if !ok {
		return
	}
	u.Close()
	c.users = append(c.users[:i], c.users[i+1:]...)
	fmt.Fprintf(c.out, "User %s leaves %s\n", u.ID(), c.hub.Name())
}

func (c *Console) cmdUsers() {
	if len(c.users) == 0 {
		fmt.Fprintln(c.out, "No users")
		return
	}
	for i, u := range c.users {
		fmt.Fprintf(c.out, "%d. %s (%d commands)\n", i+1, u.ID(), u.Len())
	}
}

func (c *Console) cmdList(args []string) {
	u, _, ok := c.lookup(args)
	if !ok {
		return
	}

	entries := u.List()
	fmt.Fprintf(c.out, "User %s has the following commands available:\n", u.ID())
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "\t(none, waiting for notify)")
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "\t%s\n", e)
	}
}

func (c *Console) cmdRun(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: run [user] <index>")
		return
	}

	u, _, ok := c.lookup(args[:len(args)-1])
	if !ok {
		return
	}

	index, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(c.out, "Invalid index: %s\n", args[len(args)-1])
		return
	}

	res, err := u.Run(ctx, index)
	switch {
	case errors.Is(err, user.ErrNoSuchCommand):
		fmt.Fprintf(c.out, "Command #%d does not exist!\n", index)
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	default:
		fmt.Fprintf(c.out, "Running #%d %s\n", index, res.Command)
		fmt.Fprintf(c.out, "\t%s\n", res.Output)
	}
}

func (c *Console) cmdAdd(args []string) {
	entry, err := catalog.ParseEntry(args)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	cmd, err := entry.Build()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if err := c.hub.AddCommand(cmd); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%s receives command: %s (#%d)\n", c.hub.Name(), cmd.Name(), c.hub.Len()-1)
}

func (c *Console) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: load <preset>")
		if names, err := catalog.Presets(); err == nil {
			fmt.Fprintf(c.out, "Presets: %s\n", strings.Join(names, ", "))
		}
		return
	}
	doc, err := catalog.Preset(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	cmds, err := doc.Build()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if err := c.hub.AddCommands(cmds...); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Added %d commands from %s\n", len(cmds), doc.Name)
}

func (c *Console) cmdCatalog() {
	cmds := c.hub.Catalog()
	if len(cmds) == 0 {
		fmt.Fprintln(c.out, "Catalog is empty")
		return
	}
	for i, cmd := range cmds {
		fmt.Fprintf(c.out, "%3d  %-15s %s\n", i, cmd.Kind(), cmd.Name())
	}
}

func (c *Console) cmdDevices() {
	for _, s := range c.hub.Devices().Status() {
		fmt.Fprintf(c.out, "%-15s %s\n", s.Kind, s.State)
	}
}

// lookup resolves a user argument. With no argument the only user is
// chosen.
func (c *Console) lookup(args []string) (*user.User, int, bool) {
	if len(args) == 0 {
		if len(c.users) == 1 {
			return c.users[0], 0, true
		}
		fmt.Fprintln(c.out, "Which user? (see 'users')")
		return nil, 0, false
	}

	name := args[0]
	if id, ok := ident.Parse(name); ok {
		name = id
	}
	for i, u := range c.users {
		if u.ID() == name {
			return u, i, true
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(c.users) {
		return c.users[n-1], n - 1, true
	}

	fmt.Fprintf(c.out, "Unknown user: %s\n", name)
	return nil, 0, false
}

func (c *Console) closeUsers() {
	for _, u := range c.users {
		u.Close()
	}
	c.users = nil
}
