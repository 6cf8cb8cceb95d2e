// Package transportorder contains the Order aggregate and its workflow
// state machine: the unit of work representing one transporter's
// pickup-to-delivery assignment for a recycler's collected material.
//
// The package models the order lifecycle as a single Stage sum type
// (Pending → Accepted → PickupConfirmed → ArrivedAtPickup →
// LoadingCompleted → DeliveryConfirmed → ArrivedAtDelivery → Completed)
// with a total mapping onto the coarse Status used by dashboards, and the
// CategoryDetail entity holding the order's itemized category/weight/price
// breakdown.
package transportorder
