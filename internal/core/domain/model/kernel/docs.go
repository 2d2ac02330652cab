// Package kernel provides core domain primitives for the distribution system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently provides UUID, a value object for unique identifiers
// with validation and comparison capabilities. It is immutable and
// thread-safe, making it suitable for concurrent use as an entity identifier.
package kernel
