// Package table turns an open sequence of heterogeneous records into a
// single normalized table.
//
// The schema is inferred from the first record: its field order is the
// column order, and each field's kind becomes the column kind. Later
// records introducing unseen field names do not widen the schema unless
// Options.UnionSchema is set. Values that cannot be coerced to their
// column kind become absent cells rather than errors, and list values
// flatten losslessly to text using record.ListSeparator.
package table
