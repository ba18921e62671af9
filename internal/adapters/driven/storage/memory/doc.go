// Package memory provides in-memory implementations of storage ports.
// They back tests and one-shot commands that must not touch the disk.
package memory
