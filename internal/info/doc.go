// Package info implements the category dispatch-and-aggregation engine for
// PowerScale cluster information.
//
// A gather invocation flows through four stages: the request parameters are
// validated into an immutable RequestContext; the Engine walks the category
// registry in its fixed enumeration order and runs the fetch-and-normalize
// handler of every requested category against the injected onefs.Client; the
// first failure aborts the invocation with a typed error; on success every
// category's canonical value (or declared empty default, for categories the
// caller did not request) is aggregated into one Report with a stable key
// set.
//
// The engine is strictly read-only: every handler issues list/get calls
// only, and the report's "changed" flag is always false.
package info
