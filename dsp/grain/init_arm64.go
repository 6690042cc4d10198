//go:build arm64 && !purego

package grain

import (
	_ "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/generic"
	_ "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
)
