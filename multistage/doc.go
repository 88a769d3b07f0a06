// Package multistage solves the minimum-cost path problem on a multistage
// graph with a traced backward dynamic-programming sweep.
//
// A multistage graph partitions its vertices into ordered stages
// V0, V1, …, Vk-1 with edges only from Vi to Vi+1. The source is in V0 and
// the target in Vk-1.
//
//	stage 0    stage 1    stage 2    stage 3
//	           ┌──▶ B ──┐
//	   S ──────┤        ├──▶ D ──────▶ T
//	           └──▶ C ──┘
//
// Solve processes stages right to left and records one Step per stage with a
// copy of the whole cost/decision table. The optimal path is rebuilt by
// following Decision forward from the source.
//
// Tie-break policy: when two edges give the same total cost, the edge that
// appears first in core.Graph.Edges wins.
//
// Unreachable targets are results: MinCost is core.Inf and Path is nil.
package multistage
