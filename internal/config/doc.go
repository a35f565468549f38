// Package config handles loading and validation of gitcfg's own
// configuration (not the git config files it queries).
//
// Configuration is read from ~/.config/gitcfg/config.toml; the GITCFG_CONFIG
// environment variable overrides the path and GITCFG_COLOR overrides the
// color mode.
//
// # Key Settings
//
//   - default_file: git config file queried when --file is not given
//     (default: .git/config); must be absolute, start with ~, or be a
//     plain relative path within the working tree
//   - color: "auto", "always" or "never" (default: "auto")
//
// # Boolean Vocabulary
//
// The [boolean] section extends the tokens the boolean decoder accepts,
// on top of the built-in true/yes/on/1 and false/no/off/0:
//
//	[boolean]
//	true = ["enabled"]
//	false = ["disabled"]
//
// A token may not appear in both lists.
package config
