// Package script turns ordered objects into a deployable DDL script.
//
// Select narrows the objects the way a user picks them (schema, type and
// name filters; DATABASE and SCHEMA objects are excluded unless asked for).
// Group arranges a selection for display. Assemble joins the selected DDL in
// dependency order and records which script lines belong to which object.
package script
