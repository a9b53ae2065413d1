// Package riderrepo reads riders from the riders table.
package riderrepo

import (
	"okada/internal/core/domain/model/rider"
)

type RiderDTO struct {
	ID                  int64 `gorm:"primaryKey"`
	Name                string
	Phone               string
	Rating              int
	CompletedDeliveries int
	Status              string
}

func (RiderDTO) TableName() string {
	return "riders"
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	return rider.RestoreRider(dto.ID, dto.Name, dto.Phone, dto.Rating, dto.CompletedDeliveries, rider.Status(dto.Status))
}
