package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "patched returns yellow", status: StatusPatched, wantFG: ColorYellow},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	result := FormatFileLine("src/modules/users/users.model.js", StatusCreated)

	assert.Contains(t, result, "src/modules/users/users.model.js")
	assert.Contains(t, result, StatusCreated)
	assert.Contains(t, result, "f:")
}

func TestFormatFileLine_LongPathKeepsGap(t *testing.T) {
	long := "src/modules/a-very-long-module-name/a-very-long-module-name.controller.js"
	result := FormatFileLine(long, StatusPatched)

	assert.Contains(t, result, long)
	assert.Contains(t, result, StatusPatched)
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Project my-app created")
	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Project my-app created")
}

func TestFormatNoun(t *testing.T) {
	assert.Contains(t, FormatNoun("Module %s added", "users"), "users")
}
