// Package dynamo provides the ODE primitives shared by the simulated wonders.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//   - [Configurable]: runtime parameter access used by the hosts and config files
//
// # Example
//
//	sys := physics.NewLorenz()
//	integ := integrators.NewEuler()
//	x := dynamo.State{0.1, 0, 0}
//	x = integ.Step(sys, x, nil, 0, 0.008)
package dynamo
