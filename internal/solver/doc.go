// Package solver finds the best running order for a model.Store.
//
// Solve runs a portfolio of branch-and-bound workers. Each worker fills the
// positions 1..N in increasing order, evaluating constraints three-valued on
// the partial assignment, and prunes any branch whose optimistic objective
// bound cannot beat the incumbent shared by all workers. Every new incumbent
// is polished by swap-based hill climbing before it is published.
//
// Worker 0 searches its tree once, greedily ordered. The other workers
// restart with randomized orders and doubling node limits. A worker that
// exhausts its tree has proven the incumbent optimal (or the model
// infeasible) and stops the rest of the portfolio.
package solver
