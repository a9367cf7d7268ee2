// Package solver provides the built-in deflection provider: a
// stiffness-method Euler-Bernoulli beam model with an element between each
// pair of adjacent stations.
package solver

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/waterload"
)

// BeamSolver solves member deflections by the direct stiffness method.
// Each element carries a linearly varying distributed load interpolated
// from the station intensities. The zero value is ready to use.
type BeamSolver struct{}

// New returns a ready BeamSolver.
func New() *BeamSolver {
	return &BeamSolver{}
}

// Deflect returns the deflection at each station in inches, downward
// positive. The load distribution must be sampled at the member's
// stations. Fails if the support arrangement leaves the system singular.
func (s *BeamSolver) Deflect(ctx context.Context, m *member.Member, load waterload.Distribution) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes := len(load.Stations)
	if nodes < 2 {
		return nil, fmt.Errorf("distribution has %d stations, need at least 2", nodes)
	}
	if len(load.Intensity) != nodes {
		return nil, fmt.Errorf("distribution has %d stations but %d intensities", nodes, len(load.Intensity))
	}

	// Work in kips and inches: E ksi, I in⁴, station ft → in, plf → kip/in.
	ei := m.Section.Modulus * m.Section.MomentOfInertia

	ndof := 2 * nodes // translation and rotation per node
	stiffness := make([][]float64, ndof)
	for i := range stiffness {
		stiffness[i] = make([]float64, ndof)
	}
	force := make([]float64, ndof)

	for e := 0; e < nodes-1; e++ {
		h := (load.Stations[e+1] - load.Stations[e]) * 12
		if h <= 0 {
			return nil, fmt.Errorf("stations must be strictly increasing, element %d has length %.4f in", e, h)
		}
		q1 := load.Intensity[e] / 12 / 1000
		q2 := load.Intensity[e+1] / 12 / 1000

		addElementStiffness(stiffness, e, ei, h)
		addElementLoad(force, e, q1, q2, h)
	}

	constrained, err := constrainedDOFs(m.Support, nodes)
	if err != nil {
		return nil, err
	}

	displacement, err := solveReduced(stiffness, force, constrained)
	if err != nil {
		return nil, err
	}

	profile := make([]float64, nodes)
	for i := range profile {
		profile[i] = displacement[2*i]
	}
	return profile, nil
}

// addElementStiffness accumulates the 4x4 prismatic beam element stiffness
// for the element starting at node e.
func addElementStiffness(k [][]float64, e int, ei, h float64) {
	c := ei / (h * h * h)
	ke := [4][4]float64{
		{12 * c, 6 * h * c, -12 * c, 6 * h * c},
		{6 * h * c, 4 * h * h * c, -6 * h * c, 2 * h * h * c},
		{-12 * c, -6 * h * c, 12 * c, -6 * h * c},
		{6 * h * c, 2 * h * h * c, -6 * h * c, 4 * h * h * c},
	}
	base := 2 * e
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			k[base+i][base+j] += ke[i][j]
		}
	}
}

// addElementLoad accumulates the work-equivalent nodal forces of a
// linearly varying distributed load q1→q2 (kip/in, downward positive) over
// an element of length h. These equal the exact fixed-end forces for loads
// up to linear order, so nodal deflections are exact for a prismatic beam.
func addElementLoad(f []float64, e int, q1, q2, h float64) {
	base := 2 * e
	f[base] += h * (7*q1 + 3*q2) / 20
	f[base+1] += h * h * (3*q1 + 2*q2) / 60
	f[base+2] += h * (3*q1 + 7*q2) / 20
	f[base+3] -= h * h * (2*q1 + 3*q2) / 60
}

// constrainedDOFs returns the set of restrained degrees of freedom for a
// support arrangement. DOF 2i is translation at node i, 2i+1 rotation.
func constrainedDOFs(support member.SupportType, nodes int) (map[int]bool, error) {
	last := nodes - 1
	switch support {
	case member.SimplySupported:
		return map[int]bool{0: true, 2 * last: true}, nil
	case member.Cantilever:
		return map[int]bool{0: true, 1: true}, nil
	case member.Continuous:
		mid := nodes / 2
		return map[int]bool{0: true, 2 * mid: true, 2 * last: true}, nil
	}
	return nil, fmt.Errorf("unsupported support type %v", support)
}

// solveReduced eliminates the constrained rows and columns and solves the
// remaining symmetric positive definite system by Cholesky factorization.
func solveReduced(stiffness [][]float64, force []float64, constrained map[int]bool) ([]float64, error) {
	ndof := len(force)
	free := make([]int, 0, ndof)
	for i := 0; i < ndof; i++ {
		if !constrained[i] {
			free = append(free, i)
		}
	}

	n := len(free)
	reduced := mat.NewSymDense(n, nil)
	for a, i := range free {
		for b := a; b < n; b++ {
			reduced.SetSym(a, b, stiffness[i][free[b]])
		}
	}
	rhs := mat.NewVecDense(n, nil)
	for a, i := range free {
		rhs.SetVec(a, force[i])
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(reduced); !ok {
		return nil, fmt.Errorf("stiffness matrix is not positive definite: member is unstable for support type")
	}
	var solution mat.VecDense
	if err := chol.SolveVecTo(&solution, rhs); err != nil {
		return nil, fmt.Errorf("stiffness solve failed: %w", err)
	}

	displacement := make([]float64, ndof)
	for a, i := range free {
		displacement[i] = solution.AtVec(a)
	}
	return displacement, nil
}
