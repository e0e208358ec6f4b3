// Package physics provides the continuous dynamical systems behind the
// simulated wonders.
//
// Each model implements the [dynamo.System] interface and
// [dynamo.Configurable] for runtime parameter adjustment:
//
//   - [Lorenz]: butterfly attractor (sigma, rho, beta)
package physics
