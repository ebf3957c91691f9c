package main

import (
	"strconv"
	"strings"
)

// Simple entry points take pipe-delimited payloads (like "3|500"); anything
// with optional or nested fields takes JSON, see json.go.

func unwrapPayload(payload *string) string {
	if payload == nil || *payload == "" {
		fail(errInvalidPayload, "empty payload")
	}
	return *payload
}

func splitFields(raw string, want int) []string {
	parts := strings.Split(raw, "|")
	if len(parts) != want {
		fail(errInvalidPayload, "expected "+strconv.Itoa(want)+" payload fields")
	}
	return parts
}

func parseUintField(s string, name string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		fail(errInvalidPayload, "invalid "+name)
	}
	return v
}

func parseAmountField(s string, name string) Amount {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		fail(errInvalidAmount, "invalid "+name)
	}
	return Amount(v)
}

func parseBoolField(s string, name string) bool {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	fail(errInvalidPayload, "invalid "+name)
	return false
}
