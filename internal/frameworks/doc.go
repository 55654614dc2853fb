// Package frameworks builds the authoritative set of valid stable
// identifiers from the FrameworksIndex subtree.
//
// Every element in every index document carrying an Id attribute
// contributes that value to the set. The set is built once before any file
// processing starts and is read-only afterwards, so parallel repair
// workers can share it without locking.
//
// A malformed index document aborts the build: validation prunes against
// this set up to whole-file deletion, so an incomplete identifier universe
// would destroy healthy documentation.
package frameworks
