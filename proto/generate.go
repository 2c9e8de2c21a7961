// Package proto holds the wire and storage schema sources. Generated code
// lands in per-schema subpackages (proto/chat, proto/groups, proto/account,
// proto/storage) and is produced by `go generate ./proto`.
package proto

//go:generate protoc --go_out=../.. --go-grpc_out=../.. chat.proto
//go:generate protoc --go_out=../.. --go-grpc_out=../.. groups.proto
//go:generate protoc --go_out=../.. --go-grpc_out=../.. account.proto
//go:generate protoc --go_out=../.. storage.proto
