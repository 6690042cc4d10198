//go:build !amd64 && !arm64

package cpu

import "runtime"

// Other architectures only run the scalar kernels.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}
