// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/meta"
)

func TestReadDocument_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0o644))

	raw, err := readDocument(path)
	assert.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(raw))
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := readDocument(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope.json")
}

func TestSelectSubdocument(t *testing.T) {
	doc := []byte(`{"spec": {"replicas": 3, "items": [{"id": "a"}, {"id": "b"}]}}`)

	assert.Equal(t, doc, selectSubdocument(doc, ""))
	assert.Equal(t, "3", string(selectSubdocument(doc, "spec.replicas")))
	assert.Equal(t, `{"id": "b"}`, string(selectSubdocument(doc, "spec.items[1]")))
	assert.Nil(t, selectSubdocument(doc, "spec.missing"))
}

func TestGetMeta(t *testing.T) {
	m := meta.Meta{Args: []string{"jcmp", "diff"}, StartingDir: "/tmp"}
	cmd := &cli.Command{Metadata: map[string]any{"meta": m}}

	assert.Equal(t, m, GetMeta(cmd))
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{Metadata: map[string]any{"meta": 42}}))
}

func TestInitApp_Commands(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"jcmp", "diff"})
	require.NoError(t, err)
	assert.Equal(t, "jcmp", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"diff", "check", "completion"}, names)
}

func TestInitApp_FlagsSorted(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"jcmp", "diff"})
	require.NoError(t, err)

	for _, cmd := range app.Commands {
		for i := 1; i < len(cmd.Flags); i++ {
			assert.LessOrEqual(t, cmd.Flags[i-1].Names()[0], cmd.Flags[i].Names()[0],
				"%s flags not sorted", cmd.Name)
		}
	}
}
