package models

import "gorm.io/gorm"

// FileBaseURL is where stored files are served from; main overrides it
// from configuration.
var FileBaseURL = "http://localhost:3333/files"

// File is an uploaded avatar image. Name keeps the original filename,
// Path the uuid-prefixed name it is stored under.
type File struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Path string `gorm:"type:varchar(255);uniqueIndex;not null" json:"path"`

	// URL is derived from Path, never persisted.
	URL string `gorm:"-" json:"url"`
}

func FileURL(path string) string {
	return FileBaseURL + "/" + path
}

// AfterFind fills the derived URL on every load.
func (f *File) AfterFind(*gorm.DB) error {
	f.URL = FileURL(f.Path)
	return nil
}
