package linkcheck

// Option configures how the fixture resolves its external dependency.
type Option func(*options)

type options struct {
	reporter VersionReporter
}

// WithReporter overrides the version reporter for the JSON library. A nil
// reporter keeps the default.
func WithReporter(r VersionReporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

func resolveOptions(opts []Option) options {
	out := options{reporter: BuildInfoReporter{}}
	for _, opt := range opts {
		opt(&out)
	}

	return out
}
