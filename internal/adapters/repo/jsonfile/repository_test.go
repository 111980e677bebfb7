package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/litebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCommandFile(t *testing.T, dir, id, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte(content), 0o644))
}

func TestLookupReturnsMatchingRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "5511999", `[{"comando":"menu","resposta":"Hi"}]`)

	record, ok := Lookup("5511999@s.whatsapp.net", "menu", dir)
	require.True(t, ok)
	assert.Equal(t, domain.CommandRecord{Command: "menu", Response: "Hi"}, record)
}

func TestLookupReturnsFirstMatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "5511999", `[
		{"comando":"help","resposta":"first"},
		{"comando":"menu","resposta":"one"},
		{"comando":"menu","resposta":"two"}
	]`)

	record, ok := Lookup("5511999@s.whatsapp.net", "menu", dir)
	require.True(t, ok)
	assert.Equal(t, "one", record.Response)
}

func TestLookupNoMatchCases(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "5511999", `[{"comando":"menu","resposta":"Hi"}]`)
	writeCommandFile(t, dir, "broken", `[{"comando":`)
	writeCommandFile(t, dir, "object", `{"comando":"menu","resposta":"Hi"}`)

	testCases := []struct {
		name    string
		id      string
		command string
	}{
		{name: "command absent", id: "5511999@s.whatsapp.net", command: "missing"},
		{name: "file absent", id: "4400000@s.whatsapp.net", command: "anything"},
		{name: "malformed json", id: "broken@s.whatsapp.net", command: "menu"},
		{name: "not an array", id: "object@s.whatsapp.net", command: "menu"},
		{name: "case sensitive", id: "5511999@s.whatsapp.net", command: "MENU"},
		{name: "traversal", id: "../5511999@s.whatsapp.net", command: "menu"},
		{name: "empty id", id: "@s.whatsapp.net", command: "menu"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, ok := Lookup(tc.id, tc.command, dir)
			assert.False(t, ok)
			assert.Equal(t, domain.CommandRecord{}, record)
		})
	}
}

func TestLookupMissingBaseDirIsNoMatch(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("5511999@s.whatsapp.net", "menu", filepath.Join(t.TempDir(), "nope"))
	assert.False(t, ok)
}

func TestGroupAndDirectIDsResolveToSameFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "120363", `[{"comando":"regras","resposta":"Be nice"}]`)

	direct, directOK := Lookup("120363@s.whatsapp.net", "regras", dir)
	group, groupOK := Lookup("120363@g.us", "regras", dir)

	require.True(t, directOK)
	require.True(t, groupOK)
	assert.Equal(t, direct, group)
}

func TestRepositoryLookupMatchesPackageLookup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "5511999", `[{"comando":"menu","resposta":"Hi"}]`)
	repo := NewRepository(dir, nil)

	record, ok := repo.Lookup(context.Background(), "5511999@g.us", "menu")
	require.True(t, ok)
	assert.Equal(t, "Hi", record.Response)

	_, ok = repo.Lookup(context.Background(), "5511999@g.us", "missing")
	assert.False(t, ok)
}

func TestRepositoryLookupCancelledContextIsNoMatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "5511999", `[{"comando":"menu","resposta":"Hi"}]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := NewRepository(dir, nil).Lookup(ctx, "5511999@g.us", "menu")
	assert.False(t, ok)
}

func TestRepositoryList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommandFile(t, dir, "5511999", `[{"comando":"menu","resposta":"Hi"},{"comando":"help","resposta":"Ask"}]`)
	writeCommandFile(t, dir, "broken", `nope`)
	repo := NewRepository(dir, nil)

	records, err := repo.List(context.Background(), "5511999@s.whatsapp.net")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.List(context.Background(), "0000@s.whatsapp.net")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = repo.List(context.Background(), "broken@g.us")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode command file")
}
