// Package settings stores the site settings blob in its singleton row.
package settings

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/partshop/partshop/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Data is the settings mapping, e.g. aboutText, contactNumbers, whatsappNumber.
// Numbers are json.Number so they round trip unchanged.
type Data = map[string]any

// Init creates the settings row with an empty mapping if it does not exist yet.
// An existing row is left untouched.
func Init(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	row := models.Settings{ID: models.SettingsID, DataJSON: models.EmptySettings}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// Get returns the stored mapping. A missing row or an unreadable blob yields an empty mapping.
func Get(db *gorm.DB) (Data, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row models.Settings

	err := db.Limit(1).Find(&row, models.SettingsID).Error
	if err != nil {
		return nil, err
	}

	if row.DataJSON == "" {
		return Data{}, nil
	}

	data, errJSON := models.DecodeBlob([]byte(row.DataJSON))
	if errJSON != nil {
		log.Warn().Err(errJSON).Msg("stored settings are not a json object, serving empty settings")

		return Data{}, nil
	}

	return data, nil
}

// Put replaces the whole blob with data. Keys missing in data are gone afterwards.
func Put(db *gorm.DB, data Data) error {
	if db == nil {
		return ErrDBNil
	}

	if data == nil {
		data = Data{}
	}

	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := models.Settings{ID: models.SettingsID, DataJSON: string(blob)}

	return db.Save(&row).Error
}
