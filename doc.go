// Package fincalc provides the calculation engines of a small personal
// finance toolbox for investors working in Indian Rupees. It is designed to be
// local and ephemeral: nothing is stored, every figure is recomputed from the
// inputs it is given.
//
// The core functionalities include:
//   - Net Worth Aggregation: summing a fixed set of categorized assets and
//     liabilities (see [Asset] and [Liability]) into a [NetWorthSummary].
//   - SIP Projection: the future value of a Systematic Investment Plan with
//     monthly annuity-due compounding, and its year by year growth breakdown
//     (see [Project]).
//   - Input Coercion: turning raw user text into amounts the engines accept,
//     degrading to safe defaults instead of failing.
//   - Insights: simple financial health ratios and tips derived from a summary.
//
// Engines are pure functions. The state a user edits lives in explicit objects
// ([NetWorthSheet] and [SIPPlanner]) owned by whichever host composes the
// engine with its presentation: the `fincalc` command line or its web shell.
package fincalc
