// Package codec converts element trees to and from JSON and YAML documents.
//
// Both decoders keep document order: object keys become the children of a
// Complex element in the order they appear, and array items become Array
// items named after the array. Numbers become Int32 when integral and within
// int32, Int64 when integral and within int64, and Float64 otherwise.
//
// MarshalJSON writes the element as a single-key object {"name": value}, so
// decoding data under a name and marshalling the result yields
// {"name": data} up to number formatting and key spacing.
package codec
