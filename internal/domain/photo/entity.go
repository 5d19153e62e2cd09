package photo

// Photo is the persisted metadata for one stored image.
// The bytes live in the file store; the two are not linked transactionally.
type Photo struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Filename string `gorm:"column:filename;type:varchar(255);not null;uniqueIndex" json:"filename"`
}

func (Photo) TableName() string { return "photos" }
