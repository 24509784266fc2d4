package send

import "context"

// fallbackGasLimit is used when estimation fails. Provisional policy:
// generous enough for most calls, cheap enough that a failed estimate
// does not block review.
const fallbackGasLimit = 1_000_000

// gasHeadroomNum/Den pad the node's estimate by 20%. Estimates run
// against current state; the state at inclusion time can cost more.
const (
	gasHeadroomNum = 120
	gasHeadroomDen = 100
)

// estimateGas fills in the draft's gas limit if the caller did not
// pin one. Estimation failure is not fatal; the fallback applies.
func (s *Send) estimateGas(ctx context.Context) {
	if s.draft.Gas > 0 {
		return
	}

	estimate, err := s.provider.EstimateGas(ctx, s.draft.CallMsg())
	if err != nil {
		s.logger.Error("gas estimation failed, using fallback: %v", err)
		s.draft.Gas = fallbackGasLimit
		return
	}

	s.draft.Gas = estimate * gasHeadroomNum / gasHeadroomDen
	s.logger.Debug("gas estimated: %d (with headroom %d)", estimate, s.draft.Gas)
}
