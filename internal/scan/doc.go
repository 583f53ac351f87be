// Package scan classifies DNS resolution outcomes into takeover verdicts and
// orchestrates batch scans over many domains, sequentially or concurrently.
package scan
