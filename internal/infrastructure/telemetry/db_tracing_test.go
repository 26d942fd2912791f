package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type tracedModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100"`
	CreatedAt time.Time
}

func setupTracingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&tracedModel{}))
	return db
}

func setupSpanRecorder(t *testing.T) (*trace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	spanRecorder := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(spanRecorder))
	return tp, spanRecorder
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestNewDBTracingPlugin(t *testing.T) {
	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	assert.NotNil(t, plugin)
	assert.Equal(t, cfg, plugin.config)
}

func TestDBTracingPlugin_RegisterOtelGorm_Disabled(t *testing.T) {
	db := setupTracingTestDB(t)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = false

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	assert.NoError(t, plugin.RegisterOtelGorm(db))
}

func TestDBTracingPlugin_RegisterOtelGorm_Enabled(t *testing.T) {
	db := setupTracingTestDB(t)

	cfg := DBTracingConfig{
		Enabled:         true,
		LogFullSQL:      false,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "sqlite",
	}

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	assert.NoError(t, plugin.RegisterOtelGorm(db))
}

func TestDBTracingPlugin_RegisterOtelGorm_DoubleRegistration(t *testing.T) {
	db := setupTracingTestDB(t)

	cfg := DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "sqlite",
	}

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	assert.NoError(t, plugin.RegisterOtelGorm(db))

	// Duplicate callback names make the second registration fail
	assert.Error(t, plugin.RegisterOtelGorm(db))
}

func TestDBTracingPlugin_RecordsRowsAffected(t *testing.T) {
	db := setupTracingTestDB(t)
	tp, spanRecorder := setupSpanRecorder(t)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cfg := DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: time.Minute,
		DBSystem:        "sqlite",
	}
	plugin := NewDBTracingPlugin(cfg, zap.NewNop())
	require.NoError(t, plugin.registerTimingCallbacks(db))

	tracer := tp.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "rows-affected-test")

	models := []tracedModel{{Name: "one"}, {Name: "two"}, {Name: "three"}}
	result := db.WithContext(ctx).Create(&models)
	require.NoError(t, result.Error)

	span.End()

	spans := spanRecorder.Ended()
	require.NotEmpty(t, spans)

	foundRows := false
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "db.rows_affected" {
			foundRows = true
			assert.Equal(t, int64(3), attr.Value.AsInt64())
		}
	}
	assert.True(t, foundRows, "db.rows_affected attribute should be present")
}

func TestDBTracingPlugin_RecordNotFoundIsNotAnError(t *testing.T) {
	db := setupTracingTestDB(t)
	tp, spanRecorder := setupSpanRecorder(t)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cfg := DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: time.Minute,
		DBSystem:        "sqlite",
	}
	plugin := NewDBTracingPlugin(cfg, zap.NewNop())
	require.NoError(t, plugin.registerTimingCallbacks(db))

	tracer := tp.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "not-found-test")

	var result tracedModel
	tx := db.WithContext(ctx).First(&result, 99999)
	require.ErrorIs(t, tx.Error, gorm.ErrRecordNotFound)

	span.End()

	spans := spanRecorder.Ended()
	require.NotEmpty(t, spans)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestDBTracingPlugin_SlowQueryEvent(t *testing.T) {
	db := setupTracingTestDB(t)
	tp, spanRecorder := setupSpanRecorder(t)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cfg := DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: 1 * time.Nanosecond,
		DBSystem:        "sqlite",
	}
	plugin := NewDBTracingPlugin(cfg, zap.NewNop())
	require.NoError(t, plugin.registerTimingCallbacks(db))

	tracer := tp.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "slow-query-test")

	require.NoError(t, db.WithContext(ctx).Create(&tracedModel{Name: "slow"}).Error)

	span.End()

	spans := spanRecorder.Ended()
	require.NotEmpty(t, spans)

	foundSlowQuery := false
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "db.slow_query" && attr.Value.AsBool() {
			foundSlowQuery = true
		}
	}
	assert.True(t, foundSlowQuery, "db.slow_query attribute should be set for queries over the threshold")
}

func TestDBTracingPlugin_AfterCallback_NoSpan(t *testing.T) {
	db := setupTracingTestDB(t)

	cfg := DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "sqlite",
	}
	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	// No recording span in the context, the callback is a no-op
	assert.NotPanics(t, func() {
		plugin.afterCallback(db.WithContext(context.Background()))
	})
}

func TestDBTracingPlugin_IntegrationWithOtelGorm(t *testing.T) {
	db := setupTracingTestDB(t)
	tp, spanRecorder := setupSpanRecorder(t)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cfg := DBTracingConfig{
		Enabled:         true,
		LogFullSQL:      true,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "sqlite",
	}

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())
	require.NoError(t, plugin.RegisterOtelGorm(db))

	tracer := tp.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "integration-test")

	scoped := db.WithContext(ctx)
	require.NoError(t, scoped.Create(&tracedModel{Name: "integration-test"}).Error)

	var found tracedModel
	require.NoError(t, scoped.First(&found, "name = ?", "integration-test").Error)
	assert.Equal(t, "integration-test", found.Name)

	span.End()

	assert.NotEmpty(t, spanRecorder.Ended())
}
