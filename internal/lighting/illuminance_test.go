package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolight/autolight-analyser/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestRequiredLux(t *testing.T) {
	tests := []struct {
		roomType string
		want     float64
	}{
		{model.RoomTypeBedroom, 150},
		{model.RoomTypeLivingRoom, 200},
		{model.RoomTypeKitchen, 400},
		{model.RoomTypeBathroom, 200},
		{model.RoomTypeOffice, 500},
		{model.RoomTypeClassroom, 500},
		{model.RoomTypeConferenceRoom, 300},
		{model.RoomTypeHallway, 150},
		{model.RoomTypeShowroom, 750},
		{model.RoomTypeWarehouse, 200},
		{model.RoomTypeLaboratory, 500},
		{model.RoomTypeHospitalRoom, 300},
		{model.RoomTypeOther, 300},
		{"server_room", 300}, // unknown type falls back to the default
		{"", 300},
	}

	for _, tt := range tests {
		t.Run(tt.roomType, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredLux(tt.roomType))
		})
	}
}

func TestRequiredLumens(t *testing.T) {
	// 5m x 4m office, 3m ceiling: ceil(20 * 500 / (0.7 * 0.8)) = 17858.
	room := model.Room{
		RoomType:    model.RoomTypeOffice,
		Length:      floatPtr(5),
		Width:       floatPtr(4),
		Area:        20,
		Height:      3,
		RequiredLux: 500,
	}
	assert.Equal(t, 17858, RequiredLumens(room))

	// A requirement of zero lux needs zero lumens.
	room.RequiredLux = 0
	assert.Equal(t, 0, RequiredLumens(room))
}

func TestNormalizeArea(t *testing.T) {
	t.Run("recomputes area from dimensions", func(t *testing.T) {
		room := model.Room{Length: floatPtr(5), Width: floatPtr(4), Area: 18.5, Height: 3}
		Normalize(&room)
		assert.Equal(t, 20.0, room.Area)
	})

	t.Run("keeps stored area within tolerance", func(t *testing.T) {
		room := model.Room{Length: floatPtr(5), Width: floatPtr(4), Area: 20.05, Height: 3}
		Normalize(&room)
		assert.Equal(t, 20.05, room.Area)
	})

	t.Run("fills missing area from dimensions", func(t *testing.T) {
		room := model.Room{Length: floatPtr(2.5), Width: floatPtr(2), Height: 3}
		Normalize(&room)
		assert.Equal(t, 5.0, room.Area)
	})

	t.Run("clamps oversized recomputed area", func(t *testing.T) {
		room := model.Room{Length: floatPtr(200), Width: floatPtr(100), Area: 1, Height: 3}
		Normalize(&room)
		assert.Equal(t, MaxArea, room.Area)
	})

	t.Run("clamps undersized recomputed area", func(t *testing.T) {
		room := model.Room{Length: floatPtr(0.2), Width: floatPtr(0.3), Area: 50, Height: 3}
		Normalize(&room)
		assert.Equal(t, MinArea, room.Area)
	})

	t.Run("leaves area alone without dimensions", func(t *testing.T) {
		room := model.Room{Area: 42, Height: 3}
		Normalize(&room)
		assert.Equal(t, 42.0, room.Area)
	})
}

func TestNormalizeRequiredLux(t *testing.T) {
	t.Run("derives from room type when unset", func(t *testing.T) {
		room := model.Room{RoomType: model.RoomTypeKitchen, Area: 12}
		Normalize(&room)
		assert.Equal(t, 400.0, room.RequiredLux)
	})

	t.Run("replaces the 300 sentinel", func(t *testing.T) {
		// An explicit override of exactly 300 cannot be told apart
		// from the default and is re-derived from the room type.
		room := model.Room{RoomType: model.RoomTypeShowroom, Area: 12, RequiredLux: 300}
		Normalize(&room)
		assert.Equal(t, 750.0, room.RequiredLux)
	})

	t.Run("keeps explicit non-default override", func(t *testing.T) {
		room := model.Room{RoomType: model.RoomTypeShowroom, Area: 12, RequiredLux: 600}
		Normalize(&room)
		assert.Equal(t, 600.0, room.RequiredLux)
	})

	t.Run("defaults height", func(t *testing.T) {
		room := model.Room{RoomType: model.RoomTypeOther, Area: 12}
		Normalize(&room)
		assert.Equal(t, DefaultHeight, room.Height)
	})
}

func TestValidate(t *testing.T) {
	base := model.Room{RoomType: model.RoomTypeOffice, Area: 20, Height: 3, RequiredLux: 500}

	t.Run("valid room", func(t *testing.T) {
		assert.NoError(t, Validate(base))
	})

	tests := []struct {
		name   string
		mutate func(*model.Room)
		field  string
	}{
		{"area too small", func(r *model.Room) { r.Area = 0.05 }, "area"},
		{"area too large", func(r *model.Room) { r.Area = 10001 }, "area"},
		{"zero length", func(r *model.Room) { r.Length = floatPtr(0) }, "length"},
		{"negative width", func(r *model.Room) { r.Width = floatPtr(-2) }, "width"},
		{"negative height", func(r *model.Room) { r.Height = -1 }, "height"},
		{"negative required lux", func(r *model.Room) { r.RequiredLux = -50 }, "required_lux"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := base
			tt.mutate(&room)
			err := Validate(room)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
