/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method-and-pattern routing on the standard ServeMux.
Catalog mutations (POST/DELETE on films), round opening, and the explicit-
round ballot correction path are wrapped in middleware.RequireAdmin; every
route is wrapped in middleware.WithLogging.

NewRouter also performs the dependency wiring: it constructs the four core
store components over the injected *sql.DB and hands them to the handlers.
*/
package router
