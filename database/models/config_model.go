package models

// Config is a json value stored under a unique key, used for state shared between replicas.
type Config struct {
	Key string `gorm:"column:key;primaryKey"`
	Val string `gorm:"column:val;type:text"`
}

func (Config) TableName() string {
	return "dm.deppkg_config"
}
