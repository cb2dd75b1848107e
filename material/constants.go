package material

// Unit conventions. Frequencies are inverse lengths in units of the
// reference length (1 µm), so f = 1/λ with λ in µm.
const (
	UmScale   = 1.0                  // reference length, µm
	EVUmScale = UmScale / 1.23984193 // converts photon energy in eV to 1/µm
	// DCFrequency stands in for the zero pole frequency of a Drude term.
	// The strength is divided by its square, so σ·f0² stays the plasma
	// frequency squared.
	DCFrequency = 1e-10
)

// Indium, free-electron fits at room temperature and 4.2 K
const (
	In295Epsilon         = 3.363
	In295PlasmaFrequency = 7.462 * UmScale
	In295Gamma           = 0.147 * UmScale

	In4p2Epsilon         = 1.000
	In4p2PlasmaFrequency = 6.8353 * UmScale
	In4p2Gamma           = 0.0471 * UmScale
)

// Indium fits are trusted from 0.1 µm to 10 µm
const (
	IndiumMinFrequency = UmScale / 10
	IndiumMaxFrequency = UmScale / 0.1
)

// Palladium, Drude plus four Lorentzian oscillators. Strengths are
// dimensionless weights of the plasma frequency, resonances and dampings
// are in eV.
const (
	PdEpsilon        = 1.0
	PdPlasmaEnergyEV = 9.72
	PdMinFrequency   = UmScale / 12.4
	PdMaxFrequency   = UmScale / 0.2
)

// pdOscillator is one line of the palladium fit
type pdOscillator struct {
	strength    float64
	resonanceEV float64 // 0 for the free carrier term
	dampingEV   float64
}

var pdFit = [5]pdOscillator{
	{strength: 0.330, resonanceEV: 0, dampingEV: 0.008},
	{strength: 0.649, resonanceEV: 0.336, dampingEV: 2.950}, // 3.690 µm
	{strength: 0.121, resonanceEV: 0.501, dampingEV: 0.555}, // 2.475 µm
	{strength: 0.638, resonanceEV: 1.659, dampingEV: 4.621}, // 0.747 µm
	{strength: 0.453, resonanceEV: 5.715, dampingEV: 3.236}, // 0.217 µm
}
