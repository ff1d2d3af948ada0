package models_test

import (
	"testing"

	"knowledgehub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticleStatus(t *testing.T) {
	cases := map[string]models.ArticleStatus{
		"draft":       models.StatusDraft,
		"Published":   models.StatusPublished,
		" ARCHIVED ":  models.StatusArchived,
		"published\n": models.StatusPublished,
	}
	for input, want := range cases {
		got, err := models.ParseArticleStatus(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "live", "deleted"} {
		_, err := models.ParseArticleStatus(input)
		assert.IsType(t, models.ErrorInvalidArgument{}, err, "input %q", input)
	}
}

func TestParseMediaType(t *testing.T) {
	cases := map[string]models.MediaType{
		"image": models.MediaImage,
		"Video": models.MediaVideo,
		"AUDIO": models.MediaAudio,
		"other": models.MediaOther,
	}
	for input, want := range cases {
		got, err := models.ParseMediaType(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := models.ParseMediaType("gif ")
	assert.IsType(t, models.ErrorInvalidArgument{}, err)
}
