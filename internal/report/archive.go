package report

import (
	"github.com/jinzhu/gorm"
)

// ArchivedReport is one generated service sheet kept for reprint.
type ArchivedReport struct {
	gorm.Model
	Date         string `gorm:"index"`
	Reservations int
	UrgentCount  int
	Content      string `gorm:"type:text"`
}

// Archive persists generated service sheets.
type Archive struct {
	db *gorm.DB
}

// NewArchive migrates the report table and returns the archive.
func NewArchive(db *gorm.DB) (*Archive, error) {
	if err := db.AutoMigrate(&ArchivedReport{}).Error; err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Save stores a generated sheet.
func (a *Archive) Save(report *ArchivedReport) error {
	return a.db.Create(report).Error
}

// Latest returns the most recent sheet for a date, or nil if none has
// been generated.
func (a *Archive) Latest(date string) (*ArchivedReport, error) {
	var report ArchivedReport
	err := a.db.Where("date = ?", date).Order("created_at desc").First(&report).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListDates returns the dates that have archived sheets, newest first.
func (a *Archive) ListDates() ([]string, error) {
	var reports []ArchivedReport
	if err := a.db.Select("date").Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	dates := []string{}
	for _, r := range reports {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	return dates, nil
}
