package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSecurityLogModel_CreateAndQueryByEvent(t *testing.T) {
	db := setupTestDB(t, "security_log", &SecurityLog{})

	require.NoError(t, db.Create(&SecurityLog{EventType: "login_success", Email: "moh@gmail.com", IP: "10.0.0.1"}).Error)
	require.NoError(t, db.Create(&SecurityLog{EventType: "login_failure", Email: "x@y.dz", IP: "10.0.0.2"}).Error)
	require.NoError(t, db.Create(&SecurityLog{EventType: "login_failure", Email: "x@y.dz", IP: "10.0.0.2"}).Error)

	var failures []SecurityLog
	require.NoError(t, db.Where("event_type = ?", "login_failure").Find(&failures).Error)
	assert.Len(t, failures, 2)
	assert.NotZero(t, failures[0].CreatedAt)
}

func TestSecurityLogModel_Details(t *testing.T) {
	db := setupTestDB(t, "security_log_details", &SecurityLog{})

	entry := SecurityLog{
		EventType: "password_reset",
		AccountID: "doctor:3",
		Location:  "Alger/Algeria",
		Details:   datatypes.JSON(`{"table":"medecins"}`),
	}
	require.NoError(t, db.Create(&entry).Error)

	var found SecurityLog
	require.NoError(t, db.First(&found, entry.ID).Error)
	assert.Equal(t, "doctor:3", found.AccountID)
	assert.Equal(t, "Alger/Algeria", found.Location)
	assert.JSONEq(t, `{"table":"medecins"}`, string(found.Details))
}
