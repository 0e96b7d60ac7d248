// Package onefs provides the client for the Dell PowerScale (OneFS)
// platform API.
//
// The Client interface is the capability the info engine consumes: one
// method per read/list operation, grouped by API area the same way the
// platform API groups its endpoints. RESTClient implements it over HTTPS
// with OneFS session authentication; tests substitute a mock that returns
// canned responses per operation.
//
// Every operation issues an independent stateless request, so a single
// client handle is safe for sequential or concurrent reuse.
package onefs
