package section

// Structural steel material constants.
const (
	// SteelE is the elastic modulus of structural steel (ksi).
	SteelE = 29000.0

	// SteelG is the shear modulus of structural steel (ksi).
	SteelG = 11200.0

	// SteelNu is Poisson's ratio for structural steel.
	SteelNu = 0.3

	// SteelDensity is the weight density of steel (kip/in³).
	SteelDensity = 2.836e-4
)
