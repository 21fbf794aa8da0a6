package constants

// Redis key formats
const (
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverRoute    = "driver:route:%s"    // Format: driver:route:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
