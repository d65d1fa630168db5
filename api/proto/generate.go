// Package proto holds the wire definitions. Generated code lands in the
// per-service generated/ directories.
package proto

//go:generate protoc --go_out=. --go_opt=module=github.com/omerfdemir/pickuptracker/api/proto --go-grpc_out=. --go-grpc_opt=module=github.com/omerfdemir/pickuptracker/api/proto auth/v1/auth.proto
//go:generate protoc --go_out=. --go_opt=module=github.com/omerfdemir/pickuptracker/api/proto --go-grpc_out=. --go-grpc_opt=module=github.com/omerfdemir/pickuptracker/api/proto dispatch/v1/dispatch.proto
