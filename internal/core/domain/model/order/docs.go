// Package order provides domain entities and business logic for the order
// workflow of the distribution system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, totals, and lifecycle
//   - Item: an order line with its catalog snapshot, owned by the order
//   - Client: the placing client's identity snapshot
//   - Status: a state machine enforcing valid workflow transitions
//   - PaymentStatus: payment state, orthogonal to fulfilment
//
// Key business rules:
//   - Orders must have a valid identifier, a client snapshot, and at least one item
//   - Totals are computed once at creation and never recomputed
//   - Status follows pending -> assigned -> accepted -> completed, with
//     rejection reachable from any non-terminal state
//   - Completed and rejected are terminal
//   - Only the assigned staff member may accept an order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
