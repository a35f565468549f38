// Package ui implements the interactive entry browser: a fuzzy-filterable
// list of all config entries with their values, used by "gitcfg browse".
package ui
