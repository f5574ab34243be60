package pagination

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type row struct {
	ID   int `gorm:"primaryKey"`
	Name string
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&row{}))
	return db
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		numPages int
		expected int
	}{
		{"empty defaults to first", "", 5, 1},
		{"garbage defaults to first", "abc", 5, 1},
		{"zero clamps to last", "0", 5, 5},
		{"negative clamps to last", "-3", 5, 5},
		{"in range", "3", 5, 3},
		{"last page", "5", 5, 5},
		{"past the end clamps to last", "99", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePage(tt.raw, tt.numPages))
		})
	}
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		perPage  int
		expected int
	}{
		{"empty listing still has one page", 0, 10, 1},
		{"exact multiple", 20, 10, 2},
		{"remainder adds a page", 13, 10, 2},
		{"single short page", 3, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumPages(tt.count, tt.perPage))
		})
	}
}

func TestPaginateWindows(t *testing.T) {
	db := openDB(t)
	for i := 1; i <= 13; i++ {
		assert.NoError(t, db.Create(&row{ID: i, Name: fmt.Sprintf("row-%d", i)}).Error)
	}

	var rows []row
	page, err := Paginate(db.Model(&row{}).Order("id DESC"), &rows, "1", 10)
	assert.NoError(t, err)
	assert.Len(t, rows, 10)
	assert.Equal(t, 13, rows[0].ID)
	assert.Equal(t, int64(13), page.Count)
	assert.Equal(t, 2, page.NumPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	rows = nil
	page, err = Paginate(db.Model(&row{}).Order("id DESC"), &rows, "2", 10)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, rows[0].ID)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	db := openDB(t)
	for i := 1; i <= 5; i++ {
		assert.NoError(t, db.Create(&row{ID: i}).Error)
	}

	var rows []row
	page, err := Paginate(db.Model(&row{}).Order("id"), &rows, "42", 10)
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Len(t, rows, 5)
}

func TestPaginateClampsBelowRangeToLastPage(t *testing.T) {
	db := openDB(t)
	for i := 1; i <= 13; i++ {
		assert.NoError(t, db.Create(&row{ID: i}).Error)
	}

	// Zero and negative page numbers land on the last page, mirroring
	// the stock paginator; only unparseable input falls back to page 1.
	for _, raw := range []string{"0", "-1"} {
		var rows []row
		page, err := Paginate(db.Model(&row{}).Order("id"), &rows, raw, 10)
		assert.NoError(t, err)
		assert.Equal(t, 2, page.Number, "page=%s", raw)
		assert.Len(t, rows, 3, "page=%s", raw)
	}
}
