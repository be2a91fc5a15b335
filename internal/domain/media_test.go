package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
)

func TestMediaUpload_Validate(t *testing.T) {
	valid := func() *domain.MediaUpload {
		return &domain.MediaUpload{
			FileName:    `C:\Users\ron\hero photo.PNG`,
			ContentType: "image/png; charset=binary",
			Size:        1024,
			Body:        strings.NewReader("png"),
		}
	}

	u := valid()
	require.NoError(t, u.Validate())
	assert.Equal(t, "uploads", u.Folder)
	assert.Equal(t, "image/png", u.ContentType)
	assert.Equal(t, "hero photo.PNG", u.FileName)
	assert.Equal(t, ".png", u.Extension())

	u = valid()
	u.Size = domain.MaxMediaSize + 1
	assert.Error(t, u.Validate())

	u = valid()
	u.ContentType = "application/pdf"
	assert.Error(t, u.Validate())

	u = valid()
	u.Folder = "../etc"
	assert.Error(t, u.Validate())

	u = valid()
	u.Folder = "Projects"
	require.NoError(t, u.Validate())
	assert.Equal(t, "projects", u.Folder)

	u = valid()
	u.Body = nil
	assert.Error(t, u.Validate())
}
