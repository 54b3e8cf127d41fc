// Package catalog describes hub command catalogs as YAML documents.
//
// A document lists commands by kind, in catalog order. Commands without
// parameters may be written as a bare kind; parameterized ones use a mapping:
//
//	version: "1.0"
//	name: evening
//	commands:
//	  - socket_on
//	  - command: light_on
//	    level: 30
//	  - command: music_play
//	    song: Jethro Tull - Roots to Branches
//
// Build turns the entries into unbound commands ready for hub.AddCommands.
// Presets embedded in the binary are available through Preset; "default"
// holds one command for every device action.
package catalog
