package lighting

import (
	"math"

	"github.com/autolight/autolight-analyser/internal/model"
)

// Factors applied when converting a lux requirement into a lumen
// requirement.  Utilization accounts for light absorbed by walls and
// furniture, maintenance for lamp depreciation and dirt build-up.
const (
	UtilizationFactor = 0.7
	MaintenanceFactor = 0.8
)

// DefaultRequiredLux is the generic illuminance target used when a room
// type is unknown.  It doubles as the "not explicitly set" sentinel
// during normalization: a stored value of exactly 300 is treated as
// derivable from the room type.
const DefaultRequiredLux = 300

// DefaultHeight is assumed for rooms whose ceiling height was not
// extracted from the drawing.
const DefaultHeight = 3.0

// Room area bounds in m².  Values outside this range are rejected by
// Validate.
const (
	MinArea = 0.1
	MaxArea = 10000.0
)

// areaTolerance is the maximum allowed divergence between the stored
// area and length*width before the stored value is overwritten.
const areaTolerance = 0.1

// luxStandards maps each room type to its standard illuminance level in
// lux.  The table is fixed reference data, never mutated at runtime.
var luxStandards = map[string]float64{
	model.RoomTypeBedroom:        150,
	model.RoomTypeLivingRoom:     200,
	model.RoomTypeKitchen:        400,
	model.RoomTypeBathroom:       200,
	model.RoomTypeOffice:         500,
	model.RoomTypeClassroom:      500,
	model.RoomTypeConferenceRoom: 300,
	model.RoomTypeHallway:        150,
	model.RoomTypeShowroom:       750,
	model.RoomTypeWarehouse:      200,
	model.RoomTypeLaboratory:     500,
	model.RoomTypeHospitalRoom:   300,
	model.RoomTypeOther:          300,
}

// RequiredLux returns the standard illuminance level for a room type.
// Unknown types yield DefaultRequiredLux.
func RequiredLux(roomType string) float64 {
	if lux, ok := luxStandards[roomType]; ok {
		return lux
	}
	return DefaultRequiredLux
}

// RoomTypes returns the set of room types with a tabulated lux level.
func RoomTypes() []string {
	out := make([]string, 0, len(luxStandards))
	for t := range luxStandards {
		out = append(out, t)
	}
	return out
}

// RequiredLumens computes the total lumen output needed for the room:
//
//	ceil(area * requiredLux / (UtilizationFactor * MaintenanceFactor))
//
// The room's RequiredLux field is used as-is; call Normalize first if
// the room may carry an unset value.
func RequiredLumens(room model.Room) int {
	lumens := (room.Area * room.RequiredLux) / (UtilizationFactor * MaintenanceFactor)
	return int(math.Ceil(lumens))
}

// Normalize brings a room's derived fields into a consistent state and
// must be called whenever room fields change, before Validate.
//
// When both length and width are present, the stored area is replaced
// by their product whenever it diverges by more than areaTolerance,
// then clamped into [MinArea, MaxArea]; a dimension mismatch is never
// an error.  RequiredLux is derived from the room type whenever it is
// unset or still equal to DefaultRequiredLux — an explicit override of
// exactly 300 is indistinguishable from "unset" and will be replaced
// by the table value.  Height falls back to DefaultHeight when unset.
func Normalize(room *model.Room) {
	if room.Length != nil && room.Width != nil {
		calculated := *room.Length * *room.Width
		if room.Area == 0 || math.Abs(room.Area-calculated) > areaTolerance {
			room.Area = calculated
		}
		if room.Area < MinArea {
			room.Area = MinArea
		}
		if room.Area > MaxArea {
			room.Area = MaxArea
		}
	}
	if room.RequiredLux == 0 || room.RequiredLux == DefaultRequiredLux {
		room.RequiredLux = RequiredLux(room.RoomType)
	}
	if room.Height <= 0 {
		room.Height = DefaultHeight
	}
}

// Validate checks a normalized room and returns a *ValidationError
// naming the first offending field, or nil when the room is valid.
func Validate(room model.Room) error {
	if room.Area < MinArea {
		return &ValidationError{Field: "area", Message: "room area must be at least 0.1 m²"}
	}
	if room.Area > MaxArea {
		return &ValidationError{Field: "area", Message: "room area cannot exceed 10,000 m²"}
	}
	if room.Length != nil && *room.Length <= 0 {
		return &ValidationError{Field: "length", Message: "length must be greater than zero"}
	}
	if room.Width != nil && *room.Width <= 0 {
		return &ValidationError{Field: "width", Message: "width must be greater than zero"}
	}
	if room.Height < 0 {
		return &ValidationError{Field: "height", Message: "height cannot be negative"}
	}
	if room.RequiredLux < 0 {
		return &ValidationError{Field: "required_lux", Message: "required lux cannot be negative"}
	}
	return nil
}
