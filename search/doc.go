// Package search runs graph searches over a grid.Grid.
//
// Every algorithm shares one pop-and-expand loop over a static direction
// table; algorithms differ only in their frontier (stack, FIFO, priority
// queue, tie-broken priority queue) and in the rule deciding whether a
// neighbor is (re)parented and pushed.
//
// Per-node search state lives in an overlay owned by the Search, never in the
// grid, so a grid may be searched by any number of Search values, including
// concurrently. A single Search is not safe for concurrent use.
//
// A Search is driven either to completion with Run or one pop-and-expand
// cycle at a time with Step, which is what visualisers use.
package search
