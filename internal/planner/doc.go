// Package planner turns a show catalog and ordering preferences into a
// constraint model.
//
// Building a plan happens in fixed steps that all write into one
// model.Store carried by the Plan:
//   - assign one slot variable per unit and numBlocks-1 boundary variables
//   - detect conflicts that make the request infeasible before any search
//   - encode block balance, wardrobe changes, short-form rules, size
//     balance and placement preferences
//
// Preferences are validated before any variable is created. A preference
// that names an unknown item, or a short form where only full pieces are
// supported, is a configuration error rather than an infeasible model.
package planner
