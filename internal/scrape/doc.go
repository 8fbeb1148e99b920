// Package scrape turns catalog pages into typed records. Every scraper locates
// one container, walks its item nodes in document order and fills each record
// from a table of field rules. Missing markup yields nil fields or empty
// slices; only a failed fetch is an error.
package scrape
