package osm2routing

// CarAccess is graded permission for cars. Order follows road importance.
type CarAccess uint16

const (
	CAR_FORBIDDEN = CarAccess(iota + 1)
	CAR_RESIDENTIAL
	CAR_TERTIARY
	CAR_SECONDARY
	CAR_PRIMARY
	CAR_TRUNK
	CAR_MOTORWAY
	// CAR_UNSET exists only while tags are being classified
	CAR_UNSET = CarAccess(0)
)

func (iotaIdx CarAccess) String() string {
	return enumName([]string{"unset", "car_forbidden", "car_residential", "car_tertiary", "car_secondary", "car_primary", "car_trunk", "car_motorway"}, int(iotaIdx))
}

// BikeAccess is graded permission for bicycles
type BikeAccess uint16

const (
	BIKE_FORBIDDEN = BikeAccess(iota + 1)
	BIKE_ALLOWED
	BIKE_LANE
	BIKE_TRACK
	BIKE_BUSWAY
	// BIKE_UNSET exists only while tags are being classified
	BIKE_UNSET = BikeAccess(0)
)

func (iotaIdx BikeAccess) String() string {
	return enumName([]string{"unset", "bike_forbidden", "bike_allowed", "bike_lane", "bike_track", "bike_busway"}, int(iotaIdx))
}

// FootAccess is permission for pedestrians. There is no direction split for it.
type FootAccess uint16

const (
	FOOT_FORBIDDEN = FootAccess(iota + 1)
	FOOT_ALLOWED
	// FOOT_UNSET exists only while tags are being classified
	FOOT_UNSET = FootAccess(0)
)

func (iotaIdx FootAccess) String() string {
	return enumName([]string{"unset", "foot_forbidden", "foot_allowed"}, int(iotaIdx))
}
