package career

import (
	"math"
	"strconv"
	"strings"

	"github.com/okian/studytrack/internal/domain/metric"
)

// ParseOverrides turns string parameters into simulated metric values.
// Unknown metric names and values that are not finite numbers are dropped.
func ParseOverrides(params map[string]string) metric.Overrides {
	out := make(metric.Overrides, len(params))
	for key, raw := range params {
		m, ok := metric.Parse(key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[m] = v
	}
	return out
}
