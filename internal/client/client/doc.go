// Package client contains the transport layer of the salesdesk client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the sales data backend: Login, Signup, UploadSalesData, AskAI.
//  2. A concrete HTTP implementation (see HTTPClient) that keeps the
//     credential obtained at login, tags every request with an X-Request-ID,
//     and maps transport failures and status codes to errors.
//
// # Credentials
//
// When /login/ answers with an access_token the client keeps only that token
// and sends it as a Bearer header; a JWT exp claim is honored locally. Older
// servers issue no token, in which case a private copy of the password is
// held for Basic-Auth and zeroed by ClearCredentials.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotAuthenticated,
// ErrBadResponse. Other non-2xx answers surface as *APIError.
package client
