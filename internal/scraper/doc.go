// Package scraper fetches the raw scoreboard HTML over HTTP.
//
// It performs exactly one blocking GET per run: no retries and no redirect
// shaping, just the transport timeout. Page validation and table parsing
// live in the scoreboard package.
package scraper
