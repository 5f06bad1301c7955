// Package schema defines the raw, typed form of a bellows schema document and
// its strict YAML parser.
//
// The types here mirror the input document one-to-one: optional keys are kept
// as pointers so later stages can tell "not specified" apart from "specified
// as the default". No inference happens in this package; that is the
// resolver's job.
package schema
