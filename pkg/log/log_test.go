package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger() (*bytes.Buffer, Logger) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return buf, &logger{entry: logrus.NewEntry(l)}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithContextAddsCorrelationID(t *testing.T) {
	buf, l := captureLogger()
	ctx, id := WithCorrelationID(context.Background())

	l.WithContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestDevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := captureLogger()

	l.WithFields(Fields{"batch_id": "abc123", "user_agent": "curl"}).WithField("remote_addr", "127.0.0.1").Info("mensagem")

	assert.Contains(t, buf.String(), "batch_id=abc123")
	assert.NotContains(t, buf.String(), "user_agent")
	assert.NotContains(t, buf.String(), "remote_addr")
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger()

	l.WithFields(Fields{"user_agent": "curl"}).WithField("remote_addr", "127.0.0.1").Info("mensagem")

	assert.Contains(t, buf.String(), "user_agent=curl")
	assert.Contains(t, buf.String(), "remote_addr=127.0.0.1")
}
