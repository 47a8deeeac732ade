package osm2routing

// accessPatch is a partial Accessibility. Fields left unset are not written.
type accessPatch struct {
	carForward   CarAccess
	carBackward  CarAccess
	bikeForward  BikeAccess
	bikeBackward BikeAccess
	foot         FootAccess
	// bikeBackwardIfUnset is written only when no earlier rule has set backward bike
	bikeBackwardIfUnset BikeAccess
	// reverseCar moves forward car grade to the backward direction and forbids the forward one
	reverseCar bool
	// lock makes bike and foot fields read-only for the rest of the keys
	lock bool
}

// valueClass is set of tag values sharing the same patch
type valueClass struct {
	values []string
	patch  accessPatch
}

// tagRule describes how values of a single tag key are classified
type tagRule struct {
	values map[string]accessPatch
	// noop values are recognized but change nothing
	noop map[string]struct{}
	// fallback is applied for unrecognized values. When nil such values are only logged.
	fallback *accessPatch
}

func newTagRule(classes ...valueClass) *tagRule {
	rule := &tagRule{
		values: make(map[string]accessPatch),
		noop:   make(map[string]struct{}),
	}
	for _, class := range classes {
		for _, value := range class.values {
			rule.values[value] = class.patch
		}
	}
	return rule
}

func (rule *tagRule) withNoop(values ...string) *tagRule {
	for _, value := range values {
		rule.noop[value] = struct{}{}
	}
	return rule
}

func (rule *tagRule) withFallback(patch accessPatch) *tagRule {
	rule.fallback = &patch
	return rule
}

// match returns patch for given value. Second value is false for unrecognized values.
func (rule *tagRule) match(value string) (accessPatch, bool) {
	if patch, ok := rule.values[value]; ok {
		return patch, true
	}
	if _, ok := rule.noop[value]; ok {
		return accessPatch{}, true
	}
	if rule.fallback != nil {
		return *rule.fallback, true
	}
	return accessPatch{}, false
}

var (
	// See ref.: https://wiki.openstreetmap.org/wiki/Key:highway
	highwayRule = newTagRule(
		valueClass{[]string{"cycleway", "path", "footway", "steps", "pedestrian"}, accessPatch{bikeForward: BIKE_TRACK, foot: FOOT_ALLOWED}},
		valueClass{[]string{"primary", "primary_link"}, accessPatch{carForward: CAR_PRIMARY, foot: FOOT_ALLOWED, bikeForward: BIKE_ALLOWED}},
		valueClass{[]string{"secondary"}, accessPatch{carForward: CAR_SECONDARY, foot: FOOT_ALLOWED, bikeForward: BIKE_ALLOWED}},
		valueClass{[]string{"tertiary"}, accessPatch{carForward: CAR_TERTIARY, foot: FOOT_ALLOWED, bikeForward: BIKE_ALLOWED}},
		valueClass{[]string{"unclassified", "residential", "living_street", "road", "service", "track"}, accessPatch{carForward: CAR_RESIDENTIAL, foot: FOOT_ALLOWED, bikeForward: BIKE_ALLOWED}},
		valueClass{[]string{"motorway", "motorway_link"}, accessPatch{carForward: CAR_MOTORWAY, foot: FOOT_FORBIDDEN, bikeForward: BIKE_FORBIDDEN, bikeBackward: BIKE_FORBIDDEN, lock: true}},
		valueClass{[]string{"trunk", "trunk_link"}, accessPatch{carForward: CAR_TRUNK, foot: FOOT_FORBIDDEN, bikeForward: BIKE_FORBIDDEN, bikeBackward: BIKE_FORBIDDEN, lock: true}},
	)

	footRule = newTagRule(
		valueClass{[]string{"yes", "designated", "permissive"}, accessPatch{foot: FOOT_ALLOWED}},
		valueClass{[]string{"no"}, accessPatch{foot: FOOT_FORBIDDEN}},
	)

	// See ref.: https://wiki.openstreetmap.org/wiki/Key:cycleway
	cyclewayRule = newTagRule(
		valueClass{[]string{"lane", "yes", "true", "lane_in_the_middle"}, accessPatch{bikeForward: BIKE_LANE}},
		valueClass{[]string{"track"}, accessPatch{bikeForward: BIKE_TRACK}},
		valueClass{[]string{"opposite_lane", "lane_left"}, accessPatch{bikeBackward: BIKE_LANE}},
		valueClass{[]string{"opposite_track"}, accessPatch{bikeBackward: BIKE_TRACK}},
		valueClass{[]string{"opposite"}, accessPatch{bikeBackward: BIKE_ALLOWED}},
		valueClass{[]string{"share_busway"}, accessPatch{bikeForward: BIKE_BUSWAY}},
	).withFallback(accessPatch{bikeForward: BIKE_LANE})

	bicycleRule = newTagRule(
		valueClass{[]string{"yes", "permissive", "destination", "designated", "private", "true"}, accessPatch{bikeForward: BIKE_ALLOWED}},
		valueClass{[]string{"no"}, accessPatch{bikeForward: BIKE_FORBIDDEN}},
	)

	buswayRule = newTagRule(
		valueClass{[]string{"yes", "track", "lane"}, accessPatch{bikeForward: BIKE_BUSWAY}},
		valueClass{[]string{"opposite_lane", "opposite_track"}, accessPatch{bikeBackward: BIKE_BUSWAY}},
	).withFallback(accessPatch{bikeForward: BIKE_BUSWAY})

	onewayPatch = accessPatch{carBackward: CAR_FORBIDDEN, bikeBackwardIfUnset: BIKE_FORBIDDEN}

	// See ref.: https://wiki.openstreetmap.org/wiki/Key:oneway
	onewayRule = newTagRule(
		valueClass{[]string{"yes", "true", "1"}, onewayPatch},
		valueClass{[]string{"-1"}, accessPatch{reverseCar: true}},
	).withNoop("no", "false", "0", "reversible", "alternating")

	junctionRule = newTagRule(
		valueClass{[]string{"roundabout", "circular"}, onewayPatch},
	)

	accessRules = map[string]*tagRule{
		"highway":    highwayRule,
		"pedestrian": footRule,
		"foot":       footRule,
		"cycleway":   cyclewayRule,
		"busway":     buswayRule,
		"bicycle":    bicycleRule,
		"oneway":     onewayRule,
		"junction":   junctionRule,
	}

	// accessKeysOrder is the order keys are applied in.
	// `oneway` and `junction` must come after `cycleway` and `busway`.
	accessKeysOrder = []string{
		"highway",
		"pedestrian",
		"foot",
		"cycleway",
		"busway",
		"bicycle",
		"oneway",
		"junction",
	}
)
