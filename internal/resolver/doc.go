// Package resolver orders database objects so that every object comes after
// the objects it depends on.
//
// Dependencies come from two places. Explicit ones are dotted references
// (SCHEMA.OBJECT or DB.SCHEMA.OBJECT) found in an object's DDL. Implicit ones
// come from containment: an object depends on its own SCHEMA and DATABASE
// objects when those are part of the same input.
//
// A two-part reference that matches objects in several databases is resolved
// to the one in the referencing object's database when that leaves exactly
// one candidate; otherwise it is dropped. This is an approximation: there is
// no search path, so a reference that the database would resolve through the
// current schema may be missed.
//
// Ordering uses Kahn's algorithm with a FIFO queue. Nodes and edges are kept
// in insertion order, so the same input always produces the same output.
// Objects caught in a cycle are appended after the sorted objects in their
// input order; resolution never fails.
package resolver
