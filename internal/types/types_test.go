package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "BROWSE", ModeBrowse.String())
	assert.Equal(t, "RUNNING", ModeRunning.String())
	assert.Equal(t, "OUTCOME", ModeOverlay.String())
	assert.Equal(t, "UNKNOWN", Mode(99).String())
}

func TestToast_Expired(t *testing.T) {
	now := time.Unix(1000, 0)

	assert.False(t, Toast{Expires: now.Add(time.Second)}.Expired(now))
	assert.True(t, Toast{Expires: now}.Expired(now))
	assert.True(t, Toast{Expires: now.Add(-time.Second)}.Expired(now))
}

func TestToastLevel_String(t *testing.T) {
	assert.Equal(t, "success", ToastSuccess.String())
	assert.Equal(t, "unknown", ToastLevel(9).String())
}
