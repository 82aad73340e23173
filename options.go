package rainflow

// Option configures a Context at construction time.
type Option func(*config)

type config struct {
	method  CountMethod
	logger  Logger
	epsilon float64
}

// WithMethod selects the cycle-closure strategy. Default MethodFourPoint.
func WithMethod(m CountMethod) Option {
	return func(c *config) { c.method = m }
}

// WithLogger attaches an optional debug sink.
func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithEpsilon overrides the HCM tolerance; default is class_width/100
// per spec.md's Open Question resolution.
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.epsilon = eps }
}
