// Package cographproto contains the protobuf messages and gRPC stubs of the
// CoGraph service.
package cographproto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative cograph.proto
