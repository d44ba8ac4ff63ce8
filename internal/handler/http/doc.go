// Package http implements the local HTTP surface of the syncer: an
// on-demand sync trigger, the last run status, build info and the
// prometheus scrape endpoint.
package http
