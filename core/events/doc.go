// Package events defines the simulation events emitted on the event bus.
//
// Available event types:
//   - DispatchEvent: outcome of dispatching one incident
//   - RoundStartedEvent: incidents generated for a round
//   - RoundCompletedEvent: round finished with its score delta
//   - SimulationCompletedEvent: final score after the last round
package events
