// Command yplus-log views and analyzes hub journal files.
//
// Journal files are written by yplus-hub when it runs with the -journal flag.
//
// Usage:
//
//	yplus-log <command> [flags] <file.ylog>
//
// Commands:
//
//	view     View journal in human-readable format
//	export   Export journal to JSON or CSV format
//	filter   Filter journal and write to new file
//	stats    Show statistics about the journal
//
// Examples:
//
//	# View all events
//	yplus-log view hub.ylog
//
//	# View only command executions
//	yplus-log view --category execution hub.ylog
//
//	# Export to CSV
//	yplus-log export --format csv -o hub.csv hub.ylog
//
//	# Keep one user's events
//	yplus-log filter --user user-1 -o user-1.ylog hub.ylog
//
//	# Show statistics
//	yplus-log stats hub.ylog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yandexplus/yplus-go/cmd/yplus-log/commands"
)

const usage = `yplus-log - YandexPlus Hub Journal Analyzer

Usage:
  yplus-log <command> [flags] <file.ylog>

Commands:
  view     View journal in human-readable format
  export   Export journal to JSON or CSV format
  filter   Filter journal and write to new file
  stats    Show statistics about the journal

Use "yplus-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: journal file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `yplus-log view - View journal in human-readable format

Usage:
  yplus-log view [flags] <file.ylog>

Flags:
`)
		fs.PrintDefaults()
	}

	actor := fs.String("actor", "", "Filter by actor (hub, user)")
	category := fs.String("category", "", "Filter by category (catalog, subscription, delivery, execution, error)")
	user := fs.String("user", "", "Filter by user ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{UserID: *user}
	if *actor != "" {
		a, err := commands.ParseActorFlag(*actor)
		if err != nil {
			fail(err)
		}
		filter.Actor = &a
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `yplus-log export - Export journal to JSON or CSV format

Usage:
  yplus-log export [flags] <file.ylog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `yplus-log filter - Filter journal and write to new file

Usage:
  yplus-log filter [flags] <file.ylog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	hubName := fs.String("hub", "", "Filter by hub name")
	user := fs.String("user", "", "Filter by user ID")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	actor := fs.String("actor", "", "Filter by actor (hub, user)")
	category := fs.String("category", "", "Filter by category (catalog, subscription, delivery, execution, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		Hub:       *hubName,
		UserID:    *user,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Actor:     *actor,
		Category:  *category,
	}

	if err := commands.RunFilter(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `yplus-log stats - Show statistics about the journal

Usage:
  yplus-log stats <file.ylog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
