//go:build purego || (!amd64 && !arm64)

package grain

import (
	_ "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/generic"
	_ "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
)
