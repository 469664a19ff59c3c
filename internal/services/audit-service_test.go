package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/handmadefactory/backend/internal/repository"
)

type capturingProducer struct {
	keys   []string
	values [][]byte
}

func (p *capturingProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func newAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AuditLog{}))
	return db
}

func TestAuditRecordPersistsAndPublishes(t *testing.T) {
	db := newAuditTestDB(t)
	producer := &capturingProducer{}
	svc := NewAuditService(repository.NewAuditRepository(db), producer)

	userID := uint(7)
	svc.Record("POST", "/api/items", 200, &userID, "203.0.113.9")

	var entry domain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/items", entry.Path)
	assert.Equal(t, 200, entry.StatusCode)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	require.NotNil(t, entry.IP)
	assert.Equal(t, "203.0.113.9", *entry.IP)

	require.Len(t, producer.values, 1)
	assert.Equal(t, "/api/items", producer.keys[0])

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(producer.values[0], &event))
	assert.Equal(t, "POST", event["method"])
	assert.Equal(t, float64(200), event["status_code"])
}

func TestAuditRecordTruncatesIP(t *testing.T) {
	db := newAuditTestDB(t)
	svc := NewAuditService(repository.NewAuditRepository(db), nil)

	longIP := strings.Repeat("f", 100)
	svc.Record("DELETE", "/api/items/1", 200, nil, longIP)

	var entry domain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Nil(t, entry.UserID)
	require.NotNil(t, entry.IP)
	assert.Len(t, *entry.IP, 64)
}

func TestAuditRecordAnonymousWithoutIP(t *testing.T) {
	db := newAuditTestDB(t)
	svc := NewAuditService(repository.NewAuditRepository(db), nil)

	svc.Record("POST", "/api/auth/login", 401, nil, "")

	var entry domain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Nil(t, entry.UserID)
	assert.Nil(t, entry.IP)
	assert.Equal(t, 401, entry.StatusCode)
}
