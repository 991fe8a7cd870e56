package model

// Room type identifiers.  Each value maps to a standard illuminance
// level in the lighting package; anything else falls back to the
// generic default of 300 lux.
const (
	RoomTypeBedroom        = "bedroom"
	RoomTypeLivingRoom     = "living_room"
	RoomTypeKitchen        = "kitchen"
	RoomTypeBathroom       = "bathroom"
	RoomTypeOffice         = "office"
	RoomTypeClassroom      = "classroom"
	RoomTypeConferenceRoom = "conference_room"
	RoomTypeHallway        = "hallway"
	RoomTypeShowroom       = "showroom"
	RoomTypeWarehouse      = "warehouse"
	RoomTypeLaboratory     = "laboratory"
	RoomTypeHospitalRoom   = "hospital_room"
	RoomTypeOther          = "other"
)

// Room is a single room detected in a CAD file.  Length and Width are
// optional because not every extraction yields both dimensions; Area is
// always present and is normalized against length*width at save time.
// A room owns its fixture installations (composition): deleting the
// room deletes them.
//
// Fields:
//  ID          – primary key identifier.
//  CADFileID   – CAD file this room belongs to.
//  Name        – room label from the drawing.
//  RoomType    – one of the RoomType* constants.
//  Length      – room length in meters (nil when unknown).
//  Width       – room width in meters (nil when unknown).
//  Area        – floor area in m², clamped to [0.1, 10000].
//  Height      – ceiling height in meters, defaults to 3.0.
//  RequiredLux – target illuminance; derived from RoomType unless the
//                user overrides it explicitly.
type Room struct {
	ID          uint64   `json:"id"`               // rooms.id
	CADFileID   uint64   `json:"cad_file_id"`      // rooms.cad_file_id
	Name        string   `json:"name"`             // rooms.name
	RoomType    string   `json:"room_type"`        // rooms.room_type
	Length      *float64 `json:"length,omitempty"` // rooms.length (nullable)
	Width       *float64 `json:"width,omitempty"`  // rooms.width (nullable)
	Area        float64  `json:"area"`             // rooms.area
	Height      float64  `json:"height"`           // rooms.height
	RequiredLux float64  `json:"required_lux"`     // rooms.required_lux
}
