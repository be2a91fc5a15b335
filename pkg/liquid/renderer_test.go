package liquid

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RegisterAndRender(t *testing.T) {
	r := NewRenderer()
	require.NoError(t, r.Register("greeting", `Hello {{ name }}{% if admin %} (admin){% endif %}`))

	out, err := r.Render(context.Background(), "greeting", map[string]interface{}{"name": "Ron", "admin": true})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ron (admin)", out)
}

func TestRenderer_ForLoopAndFilters(t *testing.T) {
	r := NewRenderer()
	src := `{% for p in projects %}{{ p.title | upcase }}[{{ p.tech | join: "/" }}]{% unless forloop.last %}, {% endunless %}{% endfor %}`

	out, err := r.RenderString(context.Background(), src, map[string]interface{}{
		"projects": []map[string]interface{}{
			{"title": "Library", "tech": []string{"PHP", "MySQL"}},
			{"title": "Docs", "tech": []string{"Next.js"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "LIBRARY[PHP/MySQL], DOCS[Next.js]", out)
}

func TestRenderer_InitialsFilter(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderString(context.Background(), `{{ name | initials }}`, map[string]interface{}{"name": "Ron Hezykiel Arbois"})
	require.NoError(t, err)
	assert.Equal(t, "RHA", out)
}

func TestRenderer_Errors(t *testing.T) {
	r := NewRenderer(WithMaxTemplateSize(32))

	_, err := r.Render(context.Background(), "missing", nil)
	assert.Error(t, err)

	err = r.Register("big", strings.Repeat("x", 64))
	assert.Error(t, err)

	_, err = r.RenderString(context.Background(), strings.Repeat("x", 64), nil)
	assert.Error(t, err)

	err = r.Register("broken", `{% for p in projects %}never closed`)
	assert.Error(t, err)
}

func TestRenderer_Timeout(t *testing.T) {
	r := NewRenderer(WithTimeout(time.Nanosecond))
	_, err := r.withTimeout(context.Background(), func() (string, error) {
		time.Sleep(50 * time.Millisecond)
		return "late", nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "", initials(""))
	assert.Equal(t, "jd", initials("  jane-doe"))
}
