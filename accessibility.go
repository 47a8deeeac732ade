package osm2routing

import (
	"go.uber.org/zap"
)

// Accessibility is per-direction and per-transport permission for a way.
// Foot permission is the same for both directions.
type Accessibility struct {
	CarForward   CarAccess
	CarBackward  CarAccess
	BikeForward  BikeAccess
	BikeBackward BikeAccess
	Foot         FootAccess
}

// ClassifyTags evaluates full tag set of a way against the access rules and returns finalized Accessibility.
// Iteration order of the map does not affect the result.
func ClassifyTags(tags map[string]string, logger *zap.Logger) Accessibility {
	if logger == nil {
		logger = zap.NewNop()
	}
	classifier := accessClassifier{}
	for _, key := range accessKeysOrder {
		value, ok := tags[key]
		if !ok {
			continue
		}
		patch, ok := accessRules[key].match(value)
		if !ok {
			logger.Info("Unhandled key-value pair", zap.String("key", key), zap.String("value", value))
			continue
		}
		classifier.apply(patch)
	}
	classifier.finalize()
	return classifier.acc
}

// DirectAccessible returns true if way could be traversed in order of its nodes by given transport
func (acc Accessibility) DirectAccessible(transport TransportType) bool {
	switch transport {
	case TRANSPORT_CAR:
		return acc.CarForward != CAR_FORBIDDEN
	case TRANSPORT_BIKE:
		return acc.BikeForward != BIKE_FORBIDDEN
	case TRANSPORT_FOOT:
		return acc.Foot != FOOT_FORBIDDEN
	default:
		return acc.CarForward != CAR_FORBIDDEN || acc.BikeForward != BIKE_FORBIDDEN || acc.Foot != FOOT_FORBIDDEN
	}
}

// ReverseAccessible returns true if way could be traversed in reverse order of its nodes by given transport
func (acc Accessibility) ReverseAccessible(transport TransportType) bool {
	switch transport {
	case TRANSPORT_CAR:
		return acc.CarBackward != CAR_FORBIDDEN
	case TRANSPORT_BIKE:
		return acc.BikeBackward != BIKE_FORBIDDEN
	case TRANSPORT_FOOT:
		return acc.Foot != FOOT_FORBIDDEN
	default:
		return acc.CarBackward != CAR_FORBIDDEN || acc.BikeBackward != BIKE_FORBIDDEN || acc.Foot != FOOT_FORBIDDEN
	}
}

// Accessible returns true if way could be traversed in given direction by given transport
func (acc Accessibility) Accessible(direction DirectionType, transport TransportType) bool {
	if direction == DIRECTION_BACKWARD {
		return acc.ReverseAccessible(transport)
	}
	return acc.DirectAccessible(transport)
}

// Grades returns car, bike and foot permissions for given direction
func (acc Accessibility) Grades(direction DirectionType) (CarAccess, BikeAccess, FootAccess) {
	if direction == DIRECTION_BACKWARD {
		return acc.CarBackward, acc.BikeBackward, acc.Foot
	}
	return acc.CarForward, acc.BikeForward, acc.Foot
}

// accessClassifier holds Accessibility under construction
type accessClassifier struct {
	acc    Accessibility
	locked bool
}

func (classifier *accessClassifier) apply(patch accessPatch) {
	acc := &classifier.acc
	if patch.carForward != CAR_UNSET {
		acc.CarForward = patch.carForward
	}
	if patch.carBackward != CAR_UNSET {
		acc.CarBackward = patch.carBackward
	}
	if patch.reverseCar {
		acc.CarBackward = acc.CarForward
		acc.CarForward = CAR_FORBIDDEN
	}
	if !classifier.locked {
		if patch.bikeForward != BIKE_UNSET {
			acc.BikeForward = patch.bikeForward
		}
		if patch.bikeBackward != BIKE_UNSET {
			acc.BikeBackward = patch.bikeBackward
		}
		if patch.bikeBackwardIfUnset != BIKE_UNSET && acc.BikeBackward == BIKE_UNSET {
			acc.BikeBackward = patch.bikeBackwardIfUnset
		}
		if patch.foot != FOOT_UNSET {
			acc.Foot = patch.foot
		}
	}
	if patch.lock {
		classifier.locked = true
	}
}

// finalize replaces every unset field with concrete value.
// Unset backward fields inherit finalized forward ones for both car and bike.
func (classifier *accessClassifier) finalize() {
	acc := &classifier.acc
	if acc.CarForward == CAR_UNSET {
		acc.CarForward = CAR_FORBIDDEN
	}
	if acc.BikeForward == BIKE_UNSET {
		acc.BikeForward = BIKE_FORBIDDEN
	}
	if acc.Foot == FOOT_UNSET {
		acc.Foot = FOOT_FORBIDDEN
	}
	if acc.CarBackward == CAR_UNSET {
		acc.CarBackward = acc.CarForward
	}
	if acc.BikeBackward == BIKE_UNSET {
		acc.BikeBackward = acc.BikeForward
	}
}
