/*
Package domain contains the core domain models of the sortscope engine.

It defines the values that flow between the sort engine and its consumers:
the elements being sorted, the running statistics of a run, the immutable
step snapshots that make up a step log and the static catalog entries that
describe each algorithm. This package is kept pure and free of I/O, following
the same hexagonal split as the rest of the module.

# Key Entities

  - Element: One bar of the visualized array (value, stable ID, presentational tag).
  - Stats: Running comparison/swap counters plus static complexity labels.
  - Step: A self-contained snapshot of the array, highlighted indices and stats.
  - Descriptor: Catalog metadata for one algorithm.
  - Result: Everything a single run produces.
*/
package domain
