package db_models

import "github.com/lib/pq"

// SamplePackage is a row of the demo catalog. ID is the package's stable key.
type SamplePackage struct {
	BaseModel
	Position    int    `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Country     string
	City        string
	Lat         float64
	Lng         float64
	Price       string
	Duration    string
	Description string
	Image       string
	Tags        pq.StringArray `gorm:"type:text[]"`
}

func (SamplePackage) TableName() string {
	return "sample_packages"
}
