// Package credsource reads account launch requests from their input
// surfaces: a CSV file for batches, or a username plus interactive
// password prompt for a single account. Parsing is strict: missing
// required fields fail the whole run before any pipeline starts.
package credsource
