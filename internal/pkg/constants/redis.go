package constants

// Redis key formats
const (
	// Driver availability pool
	KeyAvailableDrivers = "drivers:available"   // Set of online driver IDs
	KeyDriverCell       = "drivers:cell:%s"     // Format: drivers:cell:{geohash} — per-cell member set
	KeyDriverLocation   = "driver:location:%s"  // Format: driver:location:{driver_id} — location hash
	KeyDriverOffer      = "driver:offer:%s"     // Format: driver:offer:{driver_id} — outstanding offer job id
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldCell      = "cell"
	FieldTimestamp = "ts"
)
