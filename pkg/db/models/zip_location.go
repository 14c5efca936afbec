package models

// ZipLocation maps a five-digit ZIP code to the state and county it
// belongs to. Loaded from census data by a migration.
type ZipLocation struct {
	Zip       string `gorm:"column:zip;primaryKey;size:5"`
	StateCode string `gorm:"column:state_code;size:2;not null;index"`
	County    string `gorm:"column:county;not null"`
}

func (ZipLocation) TableName() string { return "zip_locations" }
