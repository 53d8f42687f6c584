// Package atmo provides a client for the Atmosphere control plane.
//
// The control plane exposes a v2 REST API for listing and creating
// compute resources (projects, identities, allocation sources, images,
// sizes, instances, volumes) and a v1 API for instance and volume
// actions. Authentication uses a bearer token obtained from the
// target's token endpoint.
//
// All operations are defined on narrow interfaces so that callers can
// be tested against mocks; RealClient is the production implementation.
package atmo
