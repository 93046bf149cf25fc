package models

// RawEntry is a single station-board record as received from the feed.
// Fields keep the absent/empty distinction; defaults are resolved later
// by the classifier and mapper.
type RawEntry struct {
	Number      Optional[string] // treno
	Destination Optional[string] // destinazione
	Time        Optional[string] // orario
	Platform    Optional[string] // binario
	Carrier     Optional[string] // vettore
	Delay       Optional[string] // ritardo
	Disruption  Optional[string] // stato
	Details     Optional[string] // dettagli
	Blink       Optional[string] // lampeggio
	Category    Optional[string] // categoria
}

// Feed keys for RawEntry fields
const (
	KeyNumber      = "treno"
	KeyDestination = "destinazione"
	KeyTime        = "orario"
	KeyPlatform    = "binario"
	KeyCarrier     = "vettore"
	KeyDelay       = "ritardo"
	KeyDisruption  = "stato"
	KeyDetails     = "dettagli"
	KeyBlink       = "lampeggio"
	KeyCategory    = "categoria"
)

// Set assigns the field identified by a feed key. Unknown keys are ignored
// and reported as false. A key that is already set keeps its first value.
func (r *RawEntry) Set(key, value string) bool {
	var f *Optional[string]
	switch key {
	case KeyNumber:
		f = &r.Number
	case KeyDestination:
		f = &r.Destination
	case KeyTime:
		f = &r.Time
	case KeyPlatform:
		f = &r.Platform
	case KeyCarrier:
		f = &r.Carrier
	case KeyDelay:
		f = &r.Delay
	case KeyDisruption:
		f = &r.Disruption
	case KeyDetails:
		f = &r.Details
	case KeyBlink:
		f = &r.Blink
	case KeyCategory:
		f = &r.Category
	default:
		return false
	}
	if !f.IsPresent() {
		*f = Some(value)
	}
	return true
}
