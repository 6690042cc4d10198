package frame

import "github.com/cwbudde/algo-noisegen/dsp/buffer"

// Pool recycles frames of one stream so a host that produces one destination
// frame per request does not allocate in steady state.
type Pool struct {
	info   StreamInfo
	pool8  []*buffer.Pool[uint8]
	pool16 []*buffer.Pool[uint16]
	poolF  []*buffer.Pool[float32]
}

// NewPool returns a Pool for frames of info.
func NewPool(info StreamInfo) *Pool {
	n := info.NumPlanes()
	p := &Pool{info: info}

	for i := range n {
		w, h := info.PlaneWidth(i), info.PlaneHeight(i)
		switch info.Format.Storage() {
		case Storage8:
			p.pool8 = append(p.pool8, buffer.NewPool[uint8](w, h))
		case Storage16:
			p.pool16 = append(p.pool16, buffer.NewPool[uint16](w, h))
		default:
			p.poolF = append(p.poolF, buffer.NewPool[float32](w, h))
		}
	}

	return p
}

// Get returns a frame of the pool's stream. Sample contents are unspecified.
func (p *Pool) Get() (*Frame, error) {
	f := &Frame{Info: p.info, Planes: make([]Plane, p.info.NumPlanes())}

	for i := range f.Planes {
		switch p.info.Format.Storage() {
		case Storage8:
			b, err := p.pool8[i].Get()
			if err != nil {
				return nil, err
			}
			f.Planes[i] = planeFrom8(b)
		case Storage16:
			b, err := p.pool16[i].Get()
			if err != nil {
				return nil, err
			}
			f.Planes[i] = planeFrom16(b)
		default:
			b, err := p.poolF[i].Get()
			if err != nil {
				return nil, err
			}
			f.Planes[i] = planeFromF(b)
		}
	}

	return f, nil
}

// Put hands the planes of f back to the pool. Frames not obtained from a
// pool or NewFrame are ignored. f must not be used afterwards.
func (p *Pool) Put(f *Frame) {
	if f == nil || len(f.Planes) != p.info.NumPlanes() {
		return
	}

	for i := range f.Planes {
		pl := &f.Planes[i]
		switch {
		case pl.buf8 != nil && p.pool8 != nil:
			p.pool8[i].Put(pl.buf8)
		case pl.buf16 != nil && p.pool16 != nil:
			p.pool16[i].Put(pl.buf16)
		case pl.bufF != nil && p.poolF != nil:
			p.poolF[i].Put(pl.bufF)
		}
		*pl = Plane{}
	}
}
