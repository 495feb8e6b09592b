package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageMeta describes one stored attachment. The binary lives in the object
// store under Bucket/Path; the database keeps only this metadata.
type ImageMeta struct {
	Filename     string `json:"filename" gorm:"size:255"`
	OriginalName string `json:"originalname" gorm:"size:255"`
	Path         string `json:"path" gorm:"size:512"`
	MimeType     string `json:"mimetype" gorm:"size:100"`
	Encoding     string `json:"encoding" gorm:"size:50"`
	Bucket       string `json:"bucket" gorm:"size:100"`
}

// StringList stores a []string as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported StringList source %T", src)
	}
}
