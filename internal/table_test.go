package internal

import (
	"bytes"
	"hashlens/unhash"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

func TestColorizeCollisions_Plain(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	collisions := []unhash.Collision{{Name: "tax", Sign: 1}, {Name: "refund", Sign: -1}, {Name: "invoice", Sign: 1}}
	require.Equal(t, "tax | (-)refund | invoice", ColorizeCollisions(collisions, 0))
	require.Equal(t, "tax | ...", ColorizeCollisions(collisions, 1))
	require.Equal(t, "-1.5000", ColorizeWeight(-1.5))
	require.Equal(t, "+0.2500", ColorizeWeight(0.25))
}

func TestNewTable(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Column", "Terms"})
	table.Append([]string{"3", "word_3"})
	table.Render()

	req.Contains(buf.String(), "COLUMN")
	req.Contains(buf.String(), "word_3")
}
