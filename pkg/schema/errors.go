package schema

import (
	"fmt"
)

// FetchError indicates that a fresh schema could not be retrieved from its
// authoritative source: unreachable host, non-success status, or a payload
// that did not decode as a schema document.
type FetchError struct {
	Identifier string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download schema from %s: %v", e.Identifier, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// OfflineNoCacheError indicates that offline mode was requested but no cache
// entry of any age exists for the identifier.
type OfflineNoCacheError struct {
	Identifier string
}

func (e *OfflineNoCacheError) Error() string {
	return fmt.Sprintf("no cached schema available for %s and offline mode is enabled, "+
		"run without --offline first to download schemas", e.Identifier)
}

// CacheReadError indicates that a cache file exists but could not be read or
// decoded. Policy callers treat it as equivalent to an absent entry when a
// re-fetch is possible.
type CacheReadError struct {
	Location string
	Err      error
}

func (e *CacheReadError) Error() string {
	return fmt.Sprintf("failed to read cached schema at %s: %v", e.Location, e.Err)
}

func (e *CacheReadError) Unwrap() error {
	return e.Err
}
