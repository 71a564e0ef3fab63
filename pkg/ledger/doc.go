// Package ledger groups the record accounting engine.
//
// A listing request runs through four steps, each in its own subpackage:
//
//	access      resolve the caller's book (and category/record) or fail NotFound
//	filter      turn query parameters into one RecordFilter predicate
//	totals      sum cash in/out over everything the predicate matches
//	pagination  order, window and count the same predicate
//
// totals and pagination never rebuild the predicate themselves; both take the
// RecordFilter produced by filter.Build, so page contents and totals always
// describe the same set.
package ledger
