// Package server runs the local HTTP surface of the syncer.
package server
