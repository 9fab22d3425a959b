// Package config loads the countdown's TOML configuration.
//
// # Overview
//
// The countdown needs a handful of construction-time values: the card title,
// the deadline, the image shown on the card and where to mount the page. All
// of them have defaults, so the program runs without a config file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/countdown/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - title: OLD IPHONE GIVEAWAY
//   - deadline: 2026-10-15 00:00:10 local time
//   - image: /images/cell.png
//   - mount_id: app
//   - strict_mount: true
//   - log_file: empty (logging discarded while the TUI runs)
//
// # TOML Format
//
//	title = "Old iPhone giveaway"
//	deadline = "2026-10-15 00:00:10"
//	image = "/images/cell.png"
//	mount_id = "app"
//	strict_mount = true
//	log_file = "~/.local/state/countdown/countdown.log"
//
// The deadline is a quoted string. Local forms ("2006-01-02 15:04:05",
// "2006-01-02T15:04", "2006-01-02", ...) are read in the local time zone;
// RFC 3339 timestamps keep their offset.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// An unparseable deadline is not an error. It is logged and left as the zero
// time, which the display treats as an already expired countdown with
// placeholder date fields.
//
// # Mount Strictness
//
// strict_mount decides what happens when the document has no element with
// mount_id: true fails startup, false logs and renders nothing.
package config
