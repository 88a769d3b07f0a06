// Package problem turns problem documents into solved, display-ready traces.
//
// A document names the engine to run and carries its input under "spec":
//
//	kind: bellman-ford          # bellman-ford | dijkstra | multistage | tsp
//	name: textbook
//	spec:
//	  vertices: [A, B, C]
//	  source: A
//	  edges:
//	    - {from: A, to: B, weight: 4}
//	    - {from: B, to: C, weight: -2}
//
// Loading is split in two phases, mirroring how the engines separate input
// contract checks from the algorithm itself:
//
//   - Load / LoadFile parse YAML (or JSON, by file extension) into a Document.
//   - Decode maps Document.Spec onto the kind's typed spec, validates its
//     struct tags and resolves vertex labels into an Instance.
//
// Instance.Solve runs the engine and converts every step into a Frame: a
// titled table keyed by the document's own labels. Frames are plain data and
// can be printed, serialised or stepped through interactively.
//
// Errors:
//
//	ErrUnknownKind - Document.Kind names no engine.
//	ErrInvalidSpec - the spec is malformed, fails validation or references
//	                 an unknown label.
//
// Engine errors (negative cycle is not one of them) are returned from Solve
// unchanged in identity, so errors.Is works against the engine sentinels.
package problem
