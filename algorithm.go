package motif

import "errors"

// ErrUnknownAlgorithmKind is returned when an unknown algorithm kind is
// provided to NewMtpAlgorithm or NewTecAlgorithm.
var ErrUnknownAlgorithmKind = errors.New("unknown algorithm kind")

// ErrInvalidWindow is returned when a SIAR window size smaller than one
// is configured.
var ErrInvalidWindow = errors.New("window size must be positive")

// ErrInvalidMaxIOI is returned when a non-positive maximum inter-onset
// interval is configured for SIATEC-C or SIATEC-CH.
var ErrInvalidMaxIOI = errors.New("max inter-onset interval must be positive")

// ErrMissingOnset reports a point with no first component. The windowed
// algorithms require an onset coordinate; running them on onset-less points
// is a precondition violation and aborts the computation.
var ErrMissingOnset = errors.New("point has no onset component")

// AlgorithmKind names one of the discovery algorithm configurations.
type AlgorithmKind string

const (
	// KindSia is exhaustive MTP discovery over all point pairs.
	KindSia AlgorithmKind = "SIA"

	// KindSiaR is windowed MTP discovery restricted to r subdiagonals.
	// It trades completeness for bounded cost.
	KindSiaR AlgorithmKind = "SIAR"

	// KindSiatec is exhaustive TEC discovery via a full difference table.
	KindSiatec AlgorithmKind = "SIATEC"

	// KindSiatecC is TEC discovery windowed by a maximum inter-onset
	// interval, with a sorted difference index.
	KindSiatecC AlgorithmKind = "SIATEC-C"

	// KindSiatecCH is SIATEC-C with a hash-backed difference index and
	// cover-based candidate pruning.
	KindSiatecCH AlgorithmKind = "SIATEC-CH"
)

// MtpSink consumes one discovered MTP. Sinks run synchronously on the
// discovery call stack, potentially millions of times for large inputs;
// they must be fast and must not re-enter the discovery call.
type MtpSink[P Point[P]] func(Mtp[P])

// TecSink consumes one discovered TEC, under the same contract as MtpSink.
type TecSink[P Point[P]] func(Tec[P])

// MtpAlgorithm computes maximal translatable patterns in a point set.
// Whether all MTPs are returned depends on the algorithm: SIA is exhaustive,
// SIAR is a deliberate approximation.
type MtpAlgorithm[P Point[P]] interface {
	// ComputeMtps returns the MTPs discovered in the point set.
	ComputeMtps(pointSet PointSet[P]) []Mtp[P]

	// ComputeMtpsToSink streams each discovered MTP to sink without
	// accumulating results, keeping memory bounded on large inputs.
	ComputeMtpsToSink(pointSet PointSet[P], sink MtpSink[P])
}

// TecAlgorithm computes translational equivalence classes in a point set.
// The set of patterns for which TECs are produced depends on the algorithm.
type TecAlgorithm[P Point[P]] interface {
	// ComputeTecs returns the TECs discovered in the point set.
	ComputeTecs(pointSet PointSet[P]) []Tec[P]

	// ComputeTecsToSink streams each discovered TEC to sink without
	// accumulating results.
	ComputeTecsToSink(pointSet PointSet[P], sink TecSink[P])
}

// AlgorithmConfig selects a discovery algorithm and carries its parameters.
// Only the fields relevant to the chosen kind are consulted.
type AlgorithmConfig struct {
	// Kind names the algorithm.
	Kind AlgorithmKind

	// Window is the SIAR subdiagonal count r. Must be at least 1.
	Window int

	// MaxIOI is the SIATEC-C / SIATEC-CH maximum inter-onset interval.
	// Must be positive.
	MaxIOI float64

	// RemoveDuplicates enables translational-duplicate removal in SIATEC.
	RemoveDuplicates bool
}

// NewMtpAlgorithm resolves an MTP algorithm configuration to a concrete
// implementation. Returns ErrUnknownAlgorithmKind for kinds that do not
// compute MTPs and ErrInvalidWindow for a non-positive SIAR window.
func NewMtpAlgorithm[P Point[P]](cfg AlgorithmConfig) (MtpAlgorithm[P], error) {
	switch cfg.Kind {
	case KindSia:
		return Sia[P]{}, nil
	case KindSiaR:
		if cfg.Window < 1 {
			return nil, ErrInvalidWindow
		}
		return SiaR[P]{Window: cfg.Window}, nil
	default:
		return nil, ErrUnknownAlgorithmKind
	}
}

// NewTecAlgorithm resolves a TEC algorithm configuration to a concrete
// implementation. Returns ErrUnknownAlgorithmKind for kinds that do not
// compute TECs and ErrInvalidMaxIOI for a non-positive maximum IOI.
func NewTecAlgorithm[P Point[P]](cfg AlgorithmConfig) (TecAlgorithm[P], error) {
	switch cfg.Kind {
	case KindSiatec:
		return Siatec[P]{RemoveDuplicates: cfg.RemoveDuplicates}, nil
	case KindSiatecC:
		if cfg.MaxIOI <= 0 {
			return nil, ErrInvalidMaxIOI
		}
		return SiatecC[P]{MaxIOI: cfg.MaxIOI}, nil
	case KindSiatecCH:
		if cfg.MaxIOI <= 0 {
			return nil, ErrInvalidMaxIOI
		}
		return SiatecCH[P]{MaxIOI: cfg.MaxIOI}, nil
	default:
		return nil, ErrUnknownAlgorithmKind
	}
}
