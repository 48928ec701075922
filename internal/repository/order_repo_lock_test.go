package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-stockroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder collects the statements a code path renders so they can
// be inspected without a running database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func dryRunDB(t *testing.T, rec *sqlRecorder) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open(""), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	require.NoError(t, err)
	return db
}

// The counter lookup must carry FOR UPDATE so concurrent creators
// serialize on the row instead of both reading the same last_value.
func TestNextSequenceLocksCounterRow(t *testing.T) {
	rec := &sqlRecorder{}
	db := dryRunDB(t, rec)

	_, err := nextSequence(db, model.OrderTypeSale, 2025)
	require.NoError(t, err)

	var lookup string
	for _, s := range rec.statements {
		if strings.HasPrefix(s, "SELECT") && strings.Contains(s, "order_sequences") {
			lookup = s
			break
		}
	}
	require.NotEmpty(t, lookup, "no SELECT against order_sequences was rendered")
	assert.Contains(t, lookup, "FOR UPDATE")
}
