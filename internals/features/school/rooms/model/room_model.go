// file: internals/features/school/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `gorm:"type:uuid;primaryKey;column:room_id" json:"room_id"`

	// Label ruangan, mis. "A101". Unik per campus.
	RoomCode     string    `gorm:"size:50;not null;column:room_code;uniqueIndex:uq_rooms_code_campus" json:"room_code"`
	RoomCampusID uuid.UUID `gorm:"type:uuid;not null;column:room_campus_id;uniqueIndex:uq_rooms_code_campus;index" json:"room_campus_id"`

	RoomCapacity *int `gorm:"column:room_capacity" json:"room_capacity,omitempty"`
	RoomFloor    *int `gorm:"column:room_floor" json:"room_floor,omitempty"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (RoomModel) TableName() string { return "rooms" }

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
