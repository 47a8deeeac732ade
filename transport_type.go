package osm2routing

import (
	"strings"

	"github.com/pkg/errors"
)

type TransportType uint16

const (
	TRANSPORT_CAR = TransportType(iota + 1)
	TRANSPORT_BIKE
	TRANSPORT_FOOT
	TRANSPORT_ANY = TransportType(0)
)

func (iotaIdx TransportType) String() string {
	return enumName([]string{"any", "car", "bike", "foot"}, int(iotaIdx))
}

var (
	transportTypesAll = map[string]TransportType{
		"any":  TRANSPORT_ANY,
		"car":  TRANSPORT_CAR,
		"bike": TRANSPORT_BIKE,
		"foot": TRANSPORT_FOOT,
	}
)

// ParseTransportType returns transport type for its textual representation
func ParseTransportType(str string) (TransportType, error) {
	if found, ok := transportTypesAll[strings.ToLower(strings.TrimSpace(str))]; ok {
		return found, nil
	}
	return TRANSPORT_ANY, errors.Errorf("Unknown transport type '%s'", str)
}

type DirectionType uint16

const (
	DIRECTION_FORWARD = DirectionType(iota + 1)
	DIRECTION_BACKWARD
)

func (iotaIdx DirectionType) String() string {
	return enumName([]string{"forward", "backward"}, int(iotaIdx)-1)
}
