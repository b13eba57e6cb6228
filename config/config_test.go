package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshConfig(t *testing.T, env map[string]string) *Config {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
	return LoadConfig()
}

func TestLoadConfigAndConnectDB_TestEnv(t *testing.T) {
	cfg := freshConfig(t, map[string]string{"APPENV": "test"})
	require.NotNil(t, cfg)
	assert.True(t, cfg.IsTest())

	db, err := ConnectDB(ServiceRDV)
	require.NoError(t, err)
	require.NotNil(t, db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := freshConfig(t, map[string]string{
		"APPENV":          "test",
		"SERVICE_PROFILE": "",
		"USE_DOCKER":      "",
		"APPPORT":         "",
		"DBPATH":          "",
	})

	assert.Equal(t, ProfileLocal, cfg.ServiceProfile)
	assert.Equal(t, "http://127.0.0.1:5005", cfg.Endpoints.RDV)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "2023", cfg.InvoiceYearTag)
	assert.Equal(t, 5, cfg.MaxUploadMB)
	assert.Equal(t, ":5009", cfg.ListenAddress(ServiceAuth))
	assert.Equal(t, ":5000", cfg.ListenAddress(ServiceDoctors))
	assert.Equal(t, ":5001", cfg.ListenAddress(ServicePatients))
	assert.Equal(t, ":5005", cfg.ListenAddress(ServiceRDV))
	assert.Equal(t, "instance/base.db", cfg.SQLitePath(ServiceAuth))
}

func TestLoadConfig_DockerProfileFromLegacyFlag(t *testing.T) {
	cfg := freshConfig(t, map[string]string{"APPENV": "test", "SERVICE_PROFILE": "", "USE_DOCKER": "true"})

	assert.Equal(t, ProfileDocker, cfg.ServiceProfile)
	assert.Equal(t, "http://auth-service:5009", cfg.Endpoints.Auth)
	assert.Equal(t, "http://patients-backend:5001", cfg.Endpoints.Patients)
	assert.Equal(t, "http://doctors-service:5000", cfg.Endpoints.Doctors)
	assert.Equal(t, "http://rdv-backend:5005", cfg.Endpoints.RDV)
}

func TestLoadConfig_URLOverrideAndPort(t *testing.T) {
	cfg := freshConfig(t, map[string]string{
		"APPENV":           "test",
		"SERVICE_PROFILE":  "tailscale",
		"RDV_SERVICE_URL":  "http://rdv.internal:8080/",
		"APPPORT":          "8081",
		"CORS_ORIGINS":     " http://a.test , ,http://b.test",
		"INVOICE_YEAR_TAG": "2025",
	})

	assert.Equal(t, ProfileTailscale, cfg.ServiceProfile)
	assert.Equal(t, "http://rdv.internal:8080", cfg.Endpoints.RDV)
	assert.Equal(t, "http://100.95.250.126:5000", cfg.Endpoints.Doctors)
	assert.Equal(t, ":8081", cfg.ListenAddress(ServiceRDV))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "2025", cfg.InvoiceYearTag)
}

func TestLoadConfig_UnknownProfileFallsBackToLocal(t *testing.T) {
	cfg := freshConfig(t, map[string]string{"APPENV": "test", "SERVICE_PROFILE": "moon"})
	assert.Equal(t, "http://127.0.0.1:5001", cfg.Endpoints.Patients)
}

func TestConnectDB_UnsupportedDriver(t *testing.T) {
	freshConfig(t, map[string]string{"APPENV": "development", "DBDRIVER": "oracle"})

	db, err := ConnectDB(ServiceAuth)
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestConnectDB_SQLiteFileCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	freshConfig(t, map[string]string{
		"APPENV":   "development",
		"DBDRIVER": "sqlite",
		"DBPATH":   dir + "/nested/auth.db",
	})

	db, err := ConnectDB(ServiceAuth)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	_ = sqlDB.Close()
	assert.DirExists(t, dir+"/nested")
}
