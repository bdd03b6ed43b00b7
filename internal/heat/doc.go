// Package heat solves the 1-D heat (diffusion) equation with an explicit
// forward-time, centered-space finite-difference scheme.
//
// The package exposes a single solver and its inputs:
//
//   - [Params]: domain extents, grid steps, diffusivity and boundaries
//   - [Boundary]: Neumann, constant Dirichlet or time-varying Dirichlet edge
//   - [Solve]: builds the space/time axes and fills the solution field
//   - [Result]: axes plus the field indexed as Field[space][time]
//
// # Example
//
//	res, err := heat.Solve(heat.Params{
//	    XStop: 1, TStop: 0.2, Dx: 0.2, Dt: 0.02, C2: 1,
//	    Lower: heat.Dirichlet(0), Upper: heat.Dirichlet(0),
//	})
//
// # Stability
//
// The scheme is only stable for r = C2*Dt/Dx² <= 0.5. Solve rejects any
// other combination with a [*StabilityError] before allocating the field.
package heat
