// Package inventory contains the inventory ledger's domain model: the
// Record entity tagging a weight of material with its custody state
// (StoragePoint, InTransit, Warehouse), and the proportional price
// allocation used when a completed appointment's material enters the
// ledger.
//
// Custody transitions are bulk, recycler-scoped operations performed by the
// persistence layer inside the same transaction as the order-lifecycle
// transition that triggers them; the entities here never move themselves
// between custody states.
package inventory
