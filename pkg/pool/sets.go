package pool

// Default is the pool used when none is configured.
const Default = "standard"

func init() {
	Register("standard", func() Pool {
		return &fixedPool{name: "standard", names: []string{"+", "-", "*", "/"}}
	})
	// nodiv keeps every intermediate value an integer.
	Register("nodiv", func() Pool {
		return &fixedPool{name: "nodiv", names: []string{"+", "-", "*"}}
	})
	Register("additive", func() Pool {
		return &fixedPool{name: "additive", names: []string{"+", "-"}}
	})
}
