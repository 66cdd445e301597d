/*
Package ports defines the interfaces adapters depend on.

Adapters (HTTP, MCP) accept a SortEngine rather than the concrete
sortscope.Engine so they can be tested against fakes and reused with a
decorated engine.

# Key Interfaces

  - Runner: Runs an algorithm to completion and returns its step log.
  - Catalog: Read-only access to the algorithm descriptors.
  - SortEngine: Both of the above.
*/
package ports
