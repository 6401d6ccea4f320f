// Package api wraps JSON calls to the WMS backend.
//
// Get, Post, Put and Delete issue one request each, decode the JSON response
// into out, and on any failure log it, show exactly one error toast and
// return the error to the caller, who may still need to react (for example
// by reverting an optimistic update).
//
//	var p wms.Product
//	if err := client.Post(ctx, "/inventory/api/products", input, &p); err != nil {
//	    return err // the user has already seen a toast
//	}
//
// Error messages follow the backend's conventions: failed POST and PUT calls
// surface the "error" field of the JSON error body; GET and DELETE use fixed
// messages. Returned errors are *errors.Error values whose Kind tells
// network, status and decode failures apart.
//
// There are no retries and no implicit timeout; bound calls with the
// context or the configured client timeout.
package api
