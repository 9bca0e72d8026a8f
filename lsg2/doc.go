// Package lsg2 implements the core codec of a lossy compressor for
// univariate, uniformly-sampled numeric time series: segmentation,
// predictor fitting, residual quantization and entropy coding, segment
// classification, and the binary .lsg2 container, including hardened
// decoding of untrusted input.
//
// Encode and Decode are the only entry points that allocate a container
// or a TimeSeries. ReadInfo, ExportTags, and ExportProfile derive
// read-only views from an already-produced container without decoding
// residuals.
package lsg2
