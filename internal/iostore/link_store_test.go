package iostore

import (
	"bytes"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *LinkStoreImpl {
	t.Helper()
	store, err := NewLinkStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "links.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	impl, ok := store.(*LinkStoreImpl)
	require.True(t, ok)
	return impl
}

func TestLinkStoreSaveAndGet(t *testing.T) {
	store := newSQLiteStore(t)
	savedAt := time.Unix(1_700_000_000, 0)

	link, err := store.Save(" duel ", "target=Heavy&weapon=Mace", savedAt)
	require.NoError(t, err)
	assert.Equal(t, "duel", link.Name)
	assert.Equal(t, "target=Heavy&weapon=Mace", link.Query)
	assert.Equal(t, savedAt.Unix(), link.SavedAt.Unix())
	assert.Len(t, link.ID, 36)

	got, err := store.Get("duel")
	require.NoError(t, err)
	assert.Equal(t, link, got)
}

func TestLinkStoreSaveReplacesQuery(t *testing.T) {
	store := newSQLiteStore(t)

	first, err := store.Save("duel", "weapon=Mace", time.Unix(100, 0))
	require.NoError(t, err)
	second, err := store.Save("duel", "weapon=Spear", time.Unix(200, 0))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "id survives an overwrite")
	assert.Equal(t, "weapon=Spear", second.Query)
	assert.Equal(t, int64(200), second.SavedAt.Unix())

	links, err := store.List()
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestLinkStoreSaveRejectsBlankName(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.Save("  ", "weapon=Mace", time.Now())
	assert.Error(t, err)
}

func TestLinkStoreGetMissing(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.Get("nothing")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestLinkStoreListOrder(t *testing.T) {
	store := newSQLiteStore(t)
	for name, ts := range map[string]int64{"old": 100, "new": 300, "mid": 200} {
		_, err := store.Save(name, "weapon="+name, time.Unix(ts, 0))
		require.NoError(t, err)
	}

	links, err := store.List()
	require.NoError(t, err)
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = l.Name
	}
	assert.Equal(t, []string{"new", "mid", "old"}, names)
}

func TestLinkStoreDelete(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.Save("duel", "weapon=Mace", time.Now())
	require.NoError(t, err)

	require.NoError(t, store.Delete("duel"))
	_, err = store.Get("duel")
	assert.ErrorIs(t, err, ErrLinkNotFound)

	assert.ErrorIs(t, store.Delete("duel"), ErrLinkNotFound)
}

func TestLinkStoreGetStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalLinks)
	assert.True(t, status.LastSavedTime.IsZero())

	_, err = store.Save("a", "weapon=Mace", time.Unix(100, 0))
	require.NoError(t, err)
	_, err = store.Save("b", "weapon=Spear", time.Unix(500, 0))
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalLinks)
	assert.Equal(t, int64(500), status.LastSavedTime.Unix())
	assert.Equal(t, int64(100), status.OldestSaveTime.Unix())
}

func TestLinkStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "links.db")

	store, err := NewLinkStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.Save("duel", "weapon=Mace", time.Unix(100, 0))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewLinkStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	link, err := reopened.Get("duel")
	require.NoError(t, err)
	assert.Equal(t, "weapon=Mace", link.Query)
}

func TestLinkStoreNoneBackend(t *testing.T) {
	store, err := NewLinkStore(schema.NoneBackend, "")
	require.NoError(t, err)

	_, err = store.Save("duel", "weapon=Mace", time.Now())
	assert.ErrorIs(t, err, ErrStoreDisabled)

	_, err = store.Get("duel")
	assert.ErrorIs(t, err, ErrLinkNotFound)

	links, err := store.List()
	assert.NoError(t, err)
	assert.Empty(t, links)

	assert.ErrorIs(t, store.Delete("duel"), ErrLinkNotFound)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestNewLinkStoreUnsupported(t *testing.T) {
	_, err := NewLinkStore(schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"armory_links"`, quoteTableName(linksTable, schema.SQLiteBackend))
	assert.Equal(t, `"armory_links"`, quoteTableName(linksTable, schema.PostgreSQLBackend))
	assert.Equal(t, "`armory_links`", quoteTableName(linksTable, schema.MySQLBackend))
}

func TestUpsertQueryPerBackend(t *testing.T) {
	tests := []struct {
		backend  schema.DatabaseBackend
		contains string
	}{
		{schema.SQLiteBackend, "ON CONFLICT (link_name)"},
		{schema.MySQLBackend, "ON DUPLICATE KEY UPDATE"},
		{schema.PostgreSQLBackend, "EXCLUDED.share_query"},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			store := &LinkStoreImpl{tableName: linksTable, backend: tt.backend}
			assert.Contains(t, store.upsertQuery(), tt.contains)
		})
	}
	assert.Equal(t, "$2", (&LinkStoreImpl{backend: schema.PostgreSQLBackend}).placeholder(2))
	assert.Equal(t, "?", (&LinkStoreImpl{backend: schema.MySQLBackend}).placeholder(2))
}

func TestPrintLinkStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintLinkStatus(&buf, schema.LinkStatus{Backend: "none"})
	assert.Equal(t, "Link Backend: none\nConnected: false\n", buf.String())

	buf.Reset()
	PrintLinkStatus(&buf, schema.LinkStatus{
		Backend:        "sqlite",
		Connected:      true,
		TotalLinks:     2,
		LastSavedTime:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local),
		OldestSaveTime: time.Date(2024, 4, 1, 8, 30, 0, 0, time.Local),
	})
	assert.Contains(t, buf.String(), "Total Links: 2")
	assert.Contains(t, buf.String(), "Last Saved: 2024-05-01 12:00:00")
	assert.Contains(t, buf.String(), "Oldest Saved: 2024-04-01 08:30:00")
}

func TestInitAndCloseStores(t *testing.T) {
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	Manager = &LinkStoreManager{}
	t.Cleanup(func() {
		initOnce = sync.Once{}
		closeOnce = sync.Once{}
		Manager = &LinkStoreManager{}
	})

	dbPath := filepath.Join(t.TempDir(), "links.db")
	require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
	store := Manager.GetLinkStore()
	require.NotNil(t, store)

	// Second call is a no-op
	require.NoError(t, InitStores(schema.MySQLBackend, "ignored"))
	assert.Same(t, store, Manager.GetLinkStore())

	CloseStores()
	CloseStores()
}

func TestInitStoresEmptyBackend(t *testing.T) {
	initOnce = sync.Once{}
	Manager = &LinkStoreManager{}
	t.Cleanup(func() {
		initOnce = sync.Once{}
		Manager = &LinkStoreManager{}
	})

	require.NoError(t, InitStores("", ""))
	assert.Nil(t, Manager.GetLinkStore())
}

func TestInitStoresFailure(t *testing.T) {
	initOnce = sync.Once{}
	Manager = &LinkStoreManager{}
	t.Cleanup(func() {
		initOnce = sync.Once{}
		Manager = &LinkStoreManager{}
	})

	err := InitStores(schema.DatabaseBackend("redis"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize link store")
}

func TestClearLinks(t *testing.T) {
	t.Run("sqlite removes the file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "links.db")
		store, err := NewLinkStore(schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearLinks(schema.SQLiteBackend, dbPath, ""))
		assert.NoFileExists(t, dbPath)
	})

	t.Run("sqlite missing file is fine", func(t *testing.T) {
		assert.NoError(t, ClearLinks(schema.SQLiteBackend, filepath.Join(t.TempDir(), "nope.db"), ""))
	})

	t.Run("none does nothing", func(t *testing.T) {
		assert.NoError(t, ClearLinks(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported backend", func(t *testing.T) {
		err := ClearLinks(schema.DatabaseBackend("redis"), "", "")
		assert.Error(t, err)
	})
}

func TestMockLinkStore(t *testing.T) {
	store := &MockLinkStore{}
	store.On("Get", "duel").Return(schema.Link{}, ErrLinkNotFound)
	mgr := &MockStoreManager{}
	mgr.On("GetLinkStore").Return(store)

	_, err := mgr.GetLinkStore().Get("duel")
	assert.True(t, errors.Is(err, ErrLinkNotFound))
	store.AssertExpectations(t)
	mgr.AssertExpectations(t)
}
