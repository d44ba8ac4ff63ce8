package client

import "errors"

// ErrRunFailed is returned in run-once mode when the sync did not succeed.
var ErrRunFailed = errors.New("sync run failed")
