package archive

import (
	"time"

	"github.com/google/uuid"
)

type Roadmap struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Grade        string     `gorm:"type:varchar(2);not null" json:"grade"`
	Subject      string     `gorm:"type:text;not null" json:"subject"`
	DailyMinutes int        `gorm:"not null" json:"daily_minutes"`
	WantsAudio   bool       `gorm:"not null;default:false" json:"wants_audio"`
	WantsVisuals bool       `gorm:"not null;default:false" json:"wants_visuals"`
	Format       string     `gorm:"type:varchar(8);not null;default:text" json:"format"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Model        string     `gorm:"type:text" json:"model,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

func (r *Roadmap) ownedBy(ownerID uuid.UUID) bool {
	return r.OwnerID != nil && *r.OwnerID == ownerID
}
