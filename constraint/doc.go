// Package constraint accumulates the linear constraints collected along an
// execution path, and feeds them to an external solver table.
package constraint
