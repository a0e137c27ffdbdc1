// Package server wires and runs the recipe API's transport servers.
//
// The HTTP server carries the REST API; the optional gRPC server exposes the
// grpc.health.v1 protocol. Both bind their addresses at construction time and
// are shut down together when the process receives a stop signal.
package server
