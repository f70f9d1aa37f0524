// Package config loads and watches the editor's motion options.
//
// Options come from a TOML or YAML file merged over built-in defaults,
// with SELKIE_* environment variables applied last. A missing file is
// not an error; the defaults stand. The Watcher reloads the file on
// change so a running editor can pick up a new keyword-character set
// without restarting.
package config
