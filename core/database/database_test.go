package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_Sqlite(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY, note TEXT)").Error
	assert.NoError(t, err)

	err = db.Exec("INSERT INTO probe (note) VALUES (?)", "ok").Error
	assert.NoError(t, err)

	var count int64
	err = db.Table("probe").Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
