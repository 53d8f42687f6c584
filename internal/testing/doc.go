// Package testing provides shared test doubles for the atmoctl codebase.
//
// MockClient is a testify mock of the full control-plane client; tests
// set expectations per operation. StubSessionProvider short-circuits
// authentication so orchestrator tests can inject a client directly.
package testing
