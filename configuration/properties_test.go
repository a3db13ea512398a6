package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPropertiesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-value-with-enough-length")

	config, err := ReadProperties()
	require.NoError(t, err)

	assert.Equal(t, "5000", config.Port)
	assert.Equal(t, StoreMongo, config.StoreDriver)
	assert.Equal(t, "empowerHer", config.Mongo.Database)
	assert.Equal(t, int64(5*1024*1024), config.Upload.MaxBytes)
	assert.Equal(t, "/uploads", config.Upload.PublicPath)
	assert.Equal(t, StorageDisk, config.Storage.Driver)
	assert.Equal(t, 168*time.Hour, config.JWT.TTL)
	assert.Equal(t, 20, config.RateLimit.AuthRequests)
}

func TestReadPropertiesRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := ReadProperties()
	assert.Error(t, err)
}

func TestReadPropertiesRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-value-with-enough-length")

	t.Run("store", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := ReadProperties()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("storage", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "ftp")
		_, err := ReadProperties()
		assert.ErrorContains(t, err, "STORAGE_DRIVER")
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "s3")
		t.Setenv("S3_BUCKET", "")
		_, err := ReadProperties()
		assert.ErrorContains(t, err, "S3_BUCKET")
	})
}

func TestReadPropertiesOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-value-with-enough-length")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://empowerher.example")

	config, err := ReadProperties()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://empowerher.example"}, config.CORS.Origins)
}
