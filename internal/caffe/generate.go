// Package caffe holds the Go bindings for the Caffe network definition
// schema. The net-definition messages of BVLC caffe.proto are kept, plus
// PermuteParameter from the SSD fork.
package caffe

//go:generate protoc --go_out=. --go_opt=paths=source_relative caffe.proto
