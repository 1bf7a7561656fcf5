package syncer

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// DefaultMaxOffsetSeconds caps the global offset search. A correlation peak
// beyond this range is treated as a false match and ignored.
const DefaultMaxOffsetSeconds = 10.0

// GlobalOffset finds the time shift (in seconds) that best aligns the
// subtitle signal with the audio signal, using FFT cross-correlation. A
// positive offset means the subtitles fire too early and must move later.
// Offsets beyond maxOffsetSeconds collapse to 0.
func GlobalOffset(audio, subtitle []float64, windowMS int, maxOffsetSeconds float64) float64 {
	if len(audio) == 0 || len(subtitle) == 0 {
		return 0
	}

	// Pad the shorter signal so both cover the same span.
	n := len(audio)
	if len(subtitle) > n {
		n = len(subtitle)
	}
	a := pad(audio, n)
	b := pad(subtitle, n)

	corr := crossCorrelate(a, b)

	maxIdx := 0
	for i, v := range corr {
		if v > corr[maxIdx] {
			maxIdx = i
		}
	}

	offsetWindows := maxIdx - n + 1
	offsetSeconds := float64(offsetWindows) * float64(windowMS) / 1000

	if maxOffsetSeconds > 0 && (offsetSeconds > maxOffsetSeconds || offsetSeconds < -maxOffsetSeconds) {
		return 0
	}
	return offsetSeconds
}

// crossCorrelate computes the full linear cross-correlation of two
// equal-length signals via the frequency domain. The result has length
// 2n-1; index k corresponds to lag k-(n-1).
func crossCorrelate(a, b []float64) []float64 {
	n := len(a)
	full := 2*n - 1

	fft := fourier.NewFFT(full)
	ca := fft.Coefficients(nil, pad(a, full))
	cb := fft.Coefficients(nil, pad(b, full))

	prod := make([]complex128, len(ca))
	for i := range ca {
		// Correlation, not convolution: conjugate the second spectrum.
		prod[i] = ca[i] * complexConj(cb[i])
	}

	// Sequence returns the unnormalized inverse transform.
	circular := fft.Sequence(nil, prod)
	scale := float64(full)

	// Reorder circular lags into the conventional full layout: negative
	// lags first, then zero and positive.
	out := make([]float64, full)
	for lag := -(n - 1); lag <= n-1; lag++ {
		j := lag
		if j < 0 {
			j += full
		}
		out[lag+n-1] = circular[j] / scale
	}
	return out
}

func complexConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

func pad(s []float64, n int) []float64 {
	if len(s) >= n {
		return s[:n]
	}
	out := make([]float64, n)
	copy(out, s)
	return out
}
