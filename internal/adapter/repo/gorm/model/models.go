// Package model holds the persistence row types. Plot and achievement data
// live inside the farm row as JSON so one farm is one record, matching the
// aggregate boundary.
package model

import "time"

type Farm struct {
	FarmID        string `gorm:"primaryKey;column:farm_id"`
	OwnerID       string `gorm:"column:owner_id;index"`
	Difficulty    string
	Latitude      float64
	Longitude     float64
	CurrentDay    int32
	Season        string
	Budget        float64
	TotalRevenue  float64
	TotalExpenses float64
	Achievements  []byte `gorm:"type:text"`
	Plots         []byte `gorm:"type:text"`
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Farm) TableName() string { return "farms" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	FarmID     string `gorm:"column:farm_id;index"`
	Type       string
	Message    string
	OccurredAt time.Time `gorm:"index"`
	Payload    []byte    `gorm:"type:text"`
}

func (DomainEvent) TableName() string { return "domain_events" }
