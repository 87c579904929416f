package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// baseDePrueba abre una base SQLite en memoria (una por test, con cache
// compartido para que el pool de conexiones vea la misma base), migra el
// esquema y carga los datos iniciales.
func baseDePrueba(t *testing.T) *gorm.DB {
	t.Helper()

	nombre := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", nombre)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, config.Migrate(db))
	config.SeedDatabase(db)
	return db
}
