package main

// Wasm execution is single threaded, so a plain flag is enough to catch a
// foreign contract calling back into us mid-operation.

var opInProgress bool

func acquireGuard() {
	if opInProgress {
		fail(errReentrancy, "operation already in progress")
	}
	opInProgress = true
}

func releaseGuard() {
	opInProgress = false
}
