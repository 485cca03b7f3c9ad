package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nextSteps = "## Next steps\n\n```sh\ncd my-app\nnpm run dev\n```\n"

func TestRenderMarkdown_NoTTYReturnsRaw(t *testing.T) {
	// go test does not attach stdout to a terminal
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, nextSteps, RenderMarkdown("\n"+nextSteps+"\n\n"))
}

func TestRenderMarkdown_Glamour(t *testing.T) {
	out, err := renderMarkdown(nextSteps)
	require.NoError(t, err)
	assert.Contains(t, out, "Next steps")
	assert.Contains(t, out, "npm run dev")
}
