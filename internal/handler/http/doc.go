// Package http implements the request pipeline of the task-manager API.
//
// Every request passes through a fixed, ordered list of stages (see
// [Handler.Stages]): exception boundary, request logging, CORS enforcement,
// authentication and authorization. The chi router behind the last stage
// dispatches to the health endpoint, the metrics endpoint, or to routes
// contributed by [RouteRegistrar] collaborators.
package http
