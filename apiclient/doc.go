// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the typed HTTP client for the Chocorocks backend.

# Sub-clients

One sub-client per backend resource, all sharing a base URL, timeout,
and transport:

	api := apiclient.New("http://localhost:8080", 30*time.Second)

	products, err := api.Products.List(ctx)
	sale, err := api.Sales.Get(ctx, 42)
	receipt, err := api.Sales.CompleteWithReceipt(ctx, req)

# Authentication

The bearer token rides on the context, attached per request:

	ctx = apiclient.WithToken(ctx, token)

Requests without a token go out anonymous and the backend answers 401.

# Error Normalization

Every failed call returns a *models.APIError. Backend error envelopes
are unwrapped (message, error, or detail keys); a 403 always carries
the fixed "not enough permissions" message; transport failures get
status 0. The client only reports an expired token, it never clears
the session or navigates; that decision belongs to the handler layer.

A 2xx body that does not decode into the expected shape is also an
error: the screens never receive half-parsed data.

# Request Coalescing

Identical concurrent GETs (same path, query, and token) are coalesced
into a single backend request via singleflight; every caller receives
the full response. Mutations are never coalesced.
*/
package apiclient
