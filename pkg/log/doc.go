// Package log provides the YandexPlus hub event journal.
//
// The journal is a machine-readable trace of what happened on a hub: commands
// added to the catalog, users attaching and detaching, catalog deliveries,
// command executions, and rejected requests. It is separate from operational
// logging (slog); the hub and users write both.
//
// # Basic Usage
//
// Components accept a Logger:
//
//	// Development: journal to the console via slog
//	h := hub.New(hub.WithJournal(log.NewSlogAdapter(slog.Default())))
//
//	// Production: append to a CBOR file
//	journal, _ := log.NewFileLogger("/var/log/yplus/hub.ylog")
//	h := hub.New(hub.WithJournal(journal))
//
//	// Both
//	h := hub.New(hub.WithJournal(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    journal,
//	)))
//
// # Event Types
//
// Every Event carries exactly one payload matching its Category:
//   - Catalog: a command was added (CatalogEvent)
//   - Subscription: an observer attached or detached (SubscriptionEvent)
//   - Delivery: a catalog snapshot was pushed or received (DeliveryEvent)
//   - Execution: a user ran a command (ExecutionEvent)
//   - Error: a request was rejected (ErrorEventData)
//
// # File Format
//
// Journal files are a stream of CBOR-encoded events with integer keys,
// conventionally with the .ylog extension. The yplus-log tool views,
// filters, exports, and summarizes them.
package log
