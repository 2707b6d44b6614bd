package roster

// Option applies a configuration option to the Transformer.
type Option func(*Transformer)

// WithStartBib sets the bib given to the first team. Negative values are ignored.
func WithStartBib(start int) Option {
	return func(t *Transformer) {
		if start >= 0 {
			t.startBib = start
		}
	}
}
