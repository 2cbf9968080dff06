// Package test provides infrastructure and utilities for integration testing of the job tracker.
//
// The package runs the real stack end to end: a file-backed SQLite database,
// the Fiber API server behind httptest, and the real API client.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    suite := test.NewSuite(t)
//	    defer suite.Cleanup()
//
//	    alice := suite.ClientFor(1)
//	    job, err := alice.CreateJob(suite.Context(), types.JobRequest{Company: "Acme", Position: "Engineer"})
//	}
package test
