package risk

// Run is the entry point for presentation layers: validate, then calculate.
// On a validation error no orders are generated.
func Run(in RawInput) (Analysis, error) {
	r, err := Validate(in)
	if err != nil {
		return Analysis{}, err
	}
	return Calculate(r), nil
}
