package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, false)

	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	log = NewLoggerTo(&buf, true)
	log.Debugf("visible")
	log.With(map[string]any{"request_id": "abc"}).Info("request")

	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "request_id=abc")
}

func TestProgress_PageDone(t *testing.T) {
	var buf bytes.Buffer
	pm := NewProgressManagerTo(&buf)

	h := pm.Register("search", 2)
	h.PageDone(1024)
	h.PageDone(512)
	pm.Close()

	assert.Equal(t, int64(1536), h.bytes.Load())
}
