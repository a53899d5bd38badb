package main

import (
	"github.com/rs/zerolog"

	"github.com/zeebo/simplerand/internal/mon"
	"github.com/zeebo/simplerand/seeds"
	"github.com/zeebo/simplerand/standard"
	"github.com/zeebo/simplerand/xorshift"
)

// samplers are the columns of a vector, in order.
var samplers = [...]string{
	"closed", "right_open", "open",
	"normal", "cauchy", "exponential", "laplace", "gamma",
}

// vectors owns every engine for one stream. The projections and the single
// stream samplers all start from the stream seed so that they read the same
// words as the raw column. Multi stream samplers de-duplicate copies of it.
type vectors struct {
	name  string
	seed  uint32
	shape float64

	raw                     xorshift.T
	closed, rightOpen, open xorshift.T
	cauchy, exp, laplace    xorshift.T
	a, b                    xorshift.T
	u, n0, n1               xorshift.T

	summaries [len(samplers)]mon.Summary
}

func newVectors(s Stream) *vectors {
	seed := s.seed()
	v := &vectors{name: s.Name, seed: seed, shape: s.shape()}

	for _, t := range []*xorshift.T{
		&v.raw, &v.closed, &v.rightOpen, &v.open,
		&v.cauchy, &v.exp, &v.laplace,
	} {
		*t = xorshift.New(seed)
	}

	normal := []uint32{seed, seed}
	seeds.Dedupe(normal)
	v.a, v.b = xorshift.New(normal[0]), xorshift.New(normal[1])

	gamma := []uint32{seed, seed, seed}
	seeds.Dedupe(gamma)
	v.u, v.n0, v.n1 = xorshift.New(gamma[0]), xorshift.New(gamma[1]), xorshift.New(gamma[2])

	return v
}

// next draws one row.
func (v *vectors) next() (raw uint32, row [len(samplers)]float64) {
	raw = v.raw.Uint32()
	row = [len(samplers)]float64{
		v.closed.Closed(),
		v.rightOpen.RightOpen(),
		v.open.Open(),
		standard.Normal(&v.a, &v.b),
		standard.Cauchy(&v.cauchy),
		standard.Exponential(&v.exp),
		standard.Laplace(&v.laplace),
		standard.Gamma(&v.u, &v.n0, &v.n1, v.shape),
	}
	for i, x := range row {
		v.summaries[i].Observe(x)
	}
	return raw, row
}

// dump logs count rows and then a summary per sampler.
func (v *vectors) dump(log zerolog.Logger, count int) error {
	log = log.With().Str("stream", v.name).Logger()
	log.Debug().Uint32("seed", v.seed).Float64("shape", v.shape).Msg("starting stream")

	for i := 0; i < count; i++ {
		raw, row := v.next()

		ev := log.Info().Int("i", i).Uint32("raw", raw)
		for j, x := range row {
			ev = ev.Float64(samplers[j], x)
		}
		ev.Msg("vector")
	}

	if count > 0 {
		for i := range v.summaries {
			s := &v.summaries[i]
			log.Info().
				Str("sampler", samplers[i]).
				Int64("n", s.Total()).
				Float64("mean", s.Mean()).
				Float64("variance", s.Variance()).
				Float64("min", s.Min()).
				Float64("max", s.Max()).
				Float64("median", s.Quantile(0.5)).
				Msg("summary")
		}
	}

	state, err := v.raw.MarshalBinary()
	if err != nil {
		return Error.Wrap(err)
	}
	log.Debug().Hex("state", state).Msg("finished stream")
	return nil
}

// run dumps every configured stream.
func run(log zerolog.Logger, cfg Config) error {
	for _, s := range cfg.Streams {
		if err := newVectors(s).dump(log, cfg.Count); err != nil {
			return err
		}
	}
	return nil
}
