/*
Package middleware provides HTTP cross-cutting helpers.

# Request Logging

WithLogging wraps a handler and logs start/completion with method, path,
and duration via slog.

# Admin Gating

RequireAdmin wraps a handler and rejects requests whose X-Admin-Token
header does not match the configured operator token. Authorization lives
here, in the caller layer, never in the store components.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody keep handlers free of
encoding boilerplate. Error bodies carry the HTTP status text plus a
user-facing message; raw store errors are never echoed to clients.
*/
package middleware
