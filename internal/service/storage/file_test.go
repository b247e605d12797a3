package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	FetchedAt time.Time         `json:"fetched_at"`
	Products  []catalog.Product `json:"products"`
}

func newTestStore(t *testing.T) *FileSnapshotStore {
	t.Helper()

	s, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)
	return s
}

// =============================================================================
// 저장 및 조회
// =============================================================================

func TestFileSnapshotStore_SaveLoad(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	want := snapshot{
		FetchedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Products:  []catalog.Product{{ID: "p1", Name: "Bag", Price: 10, Category: "Bags", IsActive: true}},
	}
	require.NoError(t, s.Save("catalog", want))

	var got snapshot
	require.NoError(t, s.Load("catalog", &got))
	assert.Equal(t, want, got)

	// 덮어쓰기
	want.Products = nil
	require.NoError(t, s.Save("catalog", want))
	require.NoError(t, s.Load("catalog", &got))
	assert.Empty(t, got.Products)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "임시 파일이 남아 있으면 안 됩니다")
}

func TestFileSnapshotStore_LoadErrors(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	var v snapshot
	assert.ErrorIs(t, s.Load("missing", &v), contract.ErrSnapshotNotFound)
	assert.ErrorIs(t, s.Load("missing", v), ErrLoadRequiresPointer)
	assert.ErrorIs(t, s.Load("missing", (*snapshot)(nil)), ErrLoadRequiresPointer)
	assert.ErrorIs(t, s.Load("  ", &v), ErrEmptyName)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), generateFilename("broken")), []byte("{"), 0o600))
	assert.Error(t, s.Load("broken", &v))
}

func TestFileSnapshotStore_ConcurrentSave(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Save("catalog", map[string]int{"n": i}))
		}()
	}
	wg.Wait()

	var got map[string]int
	require.NoError(t, s.Load("catalog", &got))
	assert.Contains(t, got, "n")
}

func TestFileSnapshotStore_PathTraversal(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	for _, name := range []string{"../../etc/passwd", "..\\windows", "a/b/c", "/absolute"} {
		require.NoError(t, s.Save(name, "x"), "이름: %s", name)
	}

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 4, "모든 파일은 기준 디렉토리 바로 아래에 생성되어야 합니다")
}

func TestNewFileSnapshotStore_CleansStaleTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stale := filepath.Join(dir, "snapshot-old.tmp")
	fresh := filepath.Join(dir, "snapshot-new.tmp")
	require.NoError(t, os.WriteFile(stale, nil, 0o600))
	require.NoError(t, os.WriteFile(fresh, nil, 0o600))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	_, err := NewFileSnapshotStore(dir)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
}

// =============================================================================
// 파일명
// =============================================================================

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	name := generateFilename("Catalog Snapshot")
	assert.True(t, strings.HasPrefix(name, "snapshot-catalog-snapshot-"), name)
	assert.True(t, strings.HasSuffix(name, ".json"))

	assert.NotEqual(t, generateFilename("a/b"), generateFilename("a-b"), "정리 후 같아지는 이름도 해시로 구분됩니다")
	assert.Equal(t, generateFilename("catalog"), generateFilename("catalog"))

	long := generateFilename(strings.Repeat("가", 100))
	assert.LessOrEqual(t, len(long), len("snapshot-")+maxNameBytes+len(fmt.Sprintf("-%016x.json", 0)))
}

func TestTruncateByBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncateByBytes("abc", 5))
	assert.Equal(t, "가", truncateByBytes("가나", 4))
	assert.Equal(t, "", truncateByBytes("가", 2))
}
