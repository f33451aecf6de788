// Package instance defines the domain model of the library scanning problem:
// books with scores, libraries with a signup cost and a daily throughput, and
// the day budget D that bounds every signup and scan.
//
// An Instance is built once through New, which validates the input and
// precomputes the read-only views every search strategy relies on:
//
//   - per-library book indices sorted by descending score (stable),
//   - per-library total score and value density (total / signup days),
//   - the instance maximum score (sum of every book score).
//
// After New returns, an Instance is never mutated and can be shared by any
// number of goroutines without synchronization.
//
// Addressing:
//
//	Books and libraries keep their caller-supplied IDs, but solutions refer to
//	them by index into Books()/Libraries(). BookIndex and LibraryIndex map IDs
//	back to indices.
//
// Errors (sentinel, all wrapping ErrInvalidInstance):
//
//	– ErrNegativeDays      if D < 0.
//	– ErrDuplicateBook     if two books share an ID.
//	– ErrNegativeScore     if a book score is negative.
//	– ErrDuplicateLibrary  if two libraries share an ID.
//	– ErrBadSignup         if a signup cost is not positive.
//	– ErrBadThroughput     if a daily throughput is not positive.
//	– ErrUnknownBook       if a library lists a book ID that does not exist.
//	– ErrRepeatedBook      if a library lists the same book twice.
package instance
