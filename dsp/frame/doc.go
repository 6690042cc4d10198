// Package frame describes planar video formats and the frames a host hands
// to the grain filter.
//
// A [Format] combines a color family, a sample type and a bit depth with the
// chroma subsampling shifts. A [StreamInfo] adds the luma dimensions and the
// frame rate. A [Frame] holds one [Plane] per component; each plane carries
// exactly one sample slice, selected by the format's [Storage]:
//
//	Storage8  -> Plane.Pix8  ([]uint8)
//	Storage16 -> Plane.Pix16 ([]uint16, 9..16 bit)
//	StorageF  -> Plane.PixF  ([]float32)
//
// Planes allocated by this package use 32-byte aligned, padded strides
// (see dsp/buffer).
package frame
