// Package wms is a typed client for the warehouse backend's JSON API.
//
// It sits on top of api.Client, so every failed call has already been
// logged and toasted by the time the error is returned:
//
//	c := wms.New(apiClient)
//	products, err := c.ListProducts(ctx, wms.ListOptions{Search: "widget"})
//	if err != nil {
//	    return err // the user has seen the toast
//	}
package wms
