package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/riordanpawley/outcome/internal/types"
	"github.com/riordanpawley/outcome/internal/ui/styles"
)

func TestToastRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render(nil, 80)

	assert.Equal(t, "", result, "Empty toast list should return empty string")
}

func TestToastRenderer_Render_SingleToast(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		{
			Level:   types.ToastSuccess,
			Message: "Copied transaction",
			Expires: time.Now().Add(5 * time.Second),
		},
	}

	result := renderer.Render(toasts, 80)

	assert.Contains(t, result, "Copied transaction")
	assert.Contains(t, result, "✔", "Should carry the level icon")
}

func TestToastRenderer_Render_Stacks(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		{Level: types.ToastInfo, Message: "First toast"},
		{Level: types.ToastError, Message: "Second toast"},
	}

	result := renderer.Render(toasts, 80)

	assert.Contains(t, result, "First toast")
	assert.Contains(t, result, "Second toast")
	assert.Less(t, strings.Index(result, "First toast"), strings.Index(result, "Second toast"))
	assert.Greater(t, len(strings.Split(result, "\n")), 1, "Multiple toasts should create multiple lines")
}

func TestToastRenderer_Render_WidthCapped(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Toast{{Message: "capped"}}, 300)

	assert.LessOrEqual(t, lipgloss.Width(result), maxWidth+2, "border adds two columns")
}

func TestIcon(t *testing.T) {
	tests := []struct {
		level types.ToastLevel
		want  string
	}{
		{types.ToastInfo, "•"},
		{types.ToastSuccess, "✔"},
		{types.ToastWarning, "⚠"},
		{types.ToastError, "✖"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Icon(tt.level))
		})
	}
}

func TestPrune(t *testing.T) {
	now := time.Unix(1000, 0)
	toasts := []types.Toast{
		{Message: "old", Expires: now.Add(-time.Second)},
		{Message: "fresh", Expires: now.Add(time.Second)},
		{Message: "edge", Expires: now},
	}

	kept := Prune(toasts, now)

	assert.Len(t, kept, 1)
	assert.Equal(t, "fresh", kept[0].Message)
	assert.Len(t, toasts, 3, "input is left untouched")
	assert.Empty(t, Prune(nil, now))
}
