// Package hashcode reads and writes the plain-text formats of the book
// scanning data sets.
//
// Instance file:
//
//	B L D              books, libraries, days
//	s0 s1 … s(B-1)     book scores; book ids are 0..B-1
//	N T M              per library: book count, signup days, books per day
//	id id … id         the N book ids it holds
//
// Library ids are their 0-based position in the file.
//
// Submission file:
//
//	A                  number of libraries signed up
//	Y K                per library, in signup order: library id, book count
//	id id … id         the K books it scans, in scan order
//
// Parse errors wrap ErrSyntax and name the offending line. Content that is
// well formed but violates the model (a dangling book id, say) is reported with
// the instance or scoring error instead.
package hashcode
