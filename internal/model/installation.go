package model

// FixtureInstallation places a quantity of one catalog fixture inside a
// room, optionally at a planar position taken from the CAD drawing.
// The Fixture field holds the resolved catalog entry when the record
// was loaded with a join; repositories fill it so that illuminance
// aggregation never has to look the catalog up again.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – room the fixtures are installed in.
//  CatalogID – catalog fixture being installed.
//  Quantity  – number of units (>= 1).
//  X, Y      – planar position from CAD (nil when not placed).
//  Fixture   – resolved catalog entry (zero value when not joined).
type FixtureInstallation struct {
	ID        uint64         `json:"id"`          // fixture_installations.id
	RoomID    uint64         `json:"room_id"`     // fixture_installations.room_id
	CatalogID uint64         `json:"catalog_id"`  // fixture_installations.catalog_id
	Quantity  int            `json:"quantity"`    // fixture_installations.quantity
	X         *float64       `json:"x,omitempty"` // fixture_installations.x_coordinate (nullable)
	Y         *float64       `json:"y,omitempty"` // fixture_installations.y_coordinate (nullable)
	Fixture   CatalogFixture `json:"fixture"`     // joined catalog_fixtures row
}
