// Package models defines the core domain models for Loofinder.
//
// # Models
//
//   - Toilet: a public toilet location with its amenities and review aggregates
//   - Review: one user's cleanliness rating and comment for a toilet
//   - User: the identity held by the session store
//
// # Design Principles
//
// 1. **System-assigned fields stay system-assigned**: callers build a ToiletDraft,
//    which has no id, distance or aggregate fields, and the store fills in the rest
// 2. **Avoid circular references**: reviews carry reviewer IDs, not pointers
// 3. **Derived values are recomputed, never trusted**: Cleanliness and ReviewCount
//    only change through the store's review aggregation
package models
