package limit

import (
	"fmt"
	"log"
	"time"
)

// ClipLogInterval is the minimum time between repeated clip warnings for the
// same channel and side.
const ClipLogInterval = 10 * time.Second

// CommandLimit clamps one command channel to an optional [lower, upper]
// range. A nil bound imposes no clipping on that side. Bounds are resolved
// once at construction and never change.
type CommandLimit struct {
	name     string
	lower    *float64
	upper    *float64
	throttle *Throttle
}

// New resolves the limit for a channel from its feasible bounds (hard
// physical limits, nil when the channel has none) and the user configured
// min/max overrides (nil when not configured). Overrides outside the
// feasible range snap to the violated feasible bound with a warning, and an
// inverted pair is swapped rather than rejected.
func New(name string, feasibleMin, feasibleMax, cfgMin, cfgMax *float64) *CommandLimit {
	l := &CommandLimit{
		name:     name,
		throttle: NewThrottle(ClipLogInterval),
	}

	if cfgMin != nil {
		switch {
		case feasibleMin != nil && *cfgMin < *feasibleMin:
			l.lower = copyBound(feasibleMin)
			log.Printf("warning: %s_min (%v) is less than the feasible minimum (%v)\n", name, *cfgMin, *feasibleMin)
		case feasibleMax != nil && *cfgMin > *feasibleMax:
			l.lower = copyBound(feasibleMax)
			log.Printf("warning: %s_min (%v) is greater than the feasible maximum (%v)\n", name, *cfgMin, *feasibleMax)
		default:
			l.lower = copyBound(cfgMin)
		}
	} else if feasibleMin != nil {
		l.lower = copyBound(feasibleMin)
	}

	if cfgMax != nil {
		switch {
		case feasibleMin != nil && *cfgMax < *feasibleMin:
			l.upper = copyBound(feasibleMin)
			log.Printf("warning: %s_max (%v) is less than the feasible minimum (%v)\n", name, *cfgMax, *feasibleMin)
		case feasibleMax != nil && *cfgMax > *feasibleMax:
			l.upper = copyBound(feasibleMax)
			log.Printf("warning: %s_max (%v) is greater than the feasible maximum (%v)\n", name, *cfgMax, *feasibleMax)
		default:
			l.upper = copyBound(cfgMax)
		}
	} else if feasibleMax != nil {
		l.upper = copyBound(feasibleMax)
	}

	if l.lower != nil && l.upper != nil && *l.lower > *l.upper {
		log.Printf("warning: %s_max (%v) is less than %s_min (%v), swapping\n", name, *l.upper, name, *l.lower)
		l.lower, l.upper = l.upper, l.lower
	}

	log.Printf("%s limit: %s %s\n", name, boundString(l.lower), boundString(l.upper))
	return l
}

// Clip returns value clamped to the resolved bounds. It never fails; out of
// range values are pulled to the nearest bound with a rate limited log line.
func (l *CommandLimit) Clip(value float64) float64 {
	if l.lower != nil && value < *l.lower {
		if l.throttle.Allow(l.name + "/min") {
			log.Printf("%s command value (%v) below minimum limit (%v), clipping\n", l.name, value, *l.lower)
		}
		return *l.lower
	}
	if l.upper != nil && value > *l.upper {
		if l.throttle.Allow(l.name + "/max") {
			log.Printf("%s command value (%v) above maximum limit (%v), clipping\n", l.name, value, *l.upper)
		}
		return *l.upper
	}
	return value
}

func (l *CommandLimit) Name() string {
	return l.name
}

// Lower returns a copy of the resolved lower bound, or nil when unset.
func (l *CommandLimit) Lower() *float64 {
	return copyBound(l.lower)
}

// Upper returns a copy of the resolved upper bound, or nil when unset.
func (l *CommandLimit) Upper() *float64 {
	return copyBound(l.upper)
}

func copyBound(b *float64) *float64 {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func boundString(b *float64) string {
	if b == nil {
		return "(none)"
	}
	return fmt.Sprintf("%v", *b)
}
