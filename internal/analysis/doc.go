// Package analysis turns recorded scene signals into summary numbers and
// small text plots.
//
//   - [PowerSpectrum] and [DominantFrequency]: spectral view of a sampled signal
//   - [Crossings] and [MeanPeriod]: period estimate from level crossings
//   - [PhasePortraitToASCII]: 2D scatter of a trajectory, such as the ornament
//     rotation about X against Y
package analysis
