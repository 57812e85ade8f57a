package metric

// Values holds one optional value per metric.
type Values struct {
	vals [Count]float64
	set  [Count]bool
}

// Set stores v for m. Invalid metrics are ignored.
func (v *Values) Set(m Metric, x float64) {
	if !m.Valid() {
		return
	}
	v.vals[m] = x
	v.set[m] = true
}

// Clear marks m as absent.
func (v *Values) Clear(m Metric) {
	if !m.Valid() {
		return
	}
	v.vals[m] = 0
	v.set[m] = false
}

// Get returns the value for m and whether it is present.
func (v Values) Get(m Metric) (float64, bool) {
	if !m.Valid() || !v.set[m] {
		return 0, false
	}
	return v.vals[m], true
}

// Has reports whether m is present.
func (v Values) Has(m Metric) bool {
	_, ok := v.Get(m)
	return ok
}

// Len returns the number of present values.
func (v Values) Len() int {
	n := 0
	for _, ok := range v.set {
		if ok {
			n++
		}
	}
	return n
}

// Map returns the present values keyed by metric name.
func (v Values) Map() map[string]float64 {
	out := make(map[string]float64, v.Len())
	for _, m := range All() {
		if x, ok := v.Get(m); ok {
			out[m.String()] = x
		}
	}
	return out
}

// FromMap builds Values from name keyed input, skipping unknown names.
func FromMap(in map[string]float64) Values {
	var v Values
	for name, x := range in {
		if m, ok := Parse(name); ok {
			v.Set(m, x)
		}
	}
	return v
}

// Overrides are simulated values that take precedence over stored ones.
// A nil or empty Overrides disables simulation.
type Overrides map[Metric]float64

// Resolve returns the override for m if present, otherwise the stored value.
func (o Overrides) Resolve(stored Values, m Metric) (float64, bool) {
	if x, ok := o[m]; ok {
		return x, true
	}
	return stored.Get(m)
}
