package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageKey(t *testing.T) {
	assert.Equal(t, "posts/post_abc.png",
		imageKey("https://bucket.s3.eu-west-1.amazonaws.com/posts/post_abc.png"))
	assert.Empty(t, imageKey(""))
	assert.Empty(t, imageKey("https://example.com/posts/post_abc.png"))
}
