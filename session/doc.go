// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages authentication state for the gateway.

# Token Persistence

Tokens live in signed cookies ("auth-token" and "refresh-token") with a
seven-day lifetime, HttpOnly and SameSite=Strict, Secure in production.
The TokenStore interface hides the cookie mechanics so tests can swap in
an in-memory store:

	store := session.NewCookieTokenStore(secret, isProduction)

# Identity Provider

Credential and refresh grants go to the identity provider, not the
Chocorocks backend:

	provider := session.NewIdentityProvider(url, anonKey, timeout)

PasswordGrant and RefreshGrant exchange credentials for a TokenPair;
Revoke invalidates the pair on logout.

# Session Manager

Manager ties the two together and owns every session decision:

	mgr := session.NewManager(store, provider, api)

	sess, err := mgr.Login(ctx, w, r, cred)
	sess, err := mgr.CurrentUser(ctx, w, r)
	mgr.Logout(ctx, w, r)

Login validates the credential locally first (well-formed email,
minimum password length) and only then contacts the provider; a fresh
token is confirmed against the backend before the session counts as
established. CurrentUser with no stored token answers (nil, nil)
without any network traffic. A rejected or expired token clears the
cookies, and everything downstream sees the same logged-out state;
there is no path back without a new login. Logout always clears, even
when the provider revocation fails, and is safe to call twice.

Expired access tokens are detected locally by reading the JWT expiry
claim (unverified) and rolled over with the refresh token; a failed
refresh is a full logout.

# Errors

Login failures map to sentinel errors the auth handler translates to
status codes: ErrMalformedCredential, ErrWeakCredential,
ErrInvalidCredentials, and ErrSessionRejected.
*/
package session
