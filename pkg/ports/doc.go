/*
Package ports defines the driven ports (interfaces) of the Lattice planner.

These interfaces decouple the core model from its collaborators: the static
game-data document source, the share-string codec, and the published-scenario
store.

# Key Interfaces

  - RosterSource: fetches the game-data document (roster + icon database).
  - ShareCodec: encodes a board snapshot to a compact string and back.
  - ScenarioStore: keeps published share strings under short slugs.
*/
package ports
